package notifications

import "time"

// TargetAll is the wildcard value on every targeting axis.
const TargetAll = "All"

// Values of the hostel targeting axis.
const (
	HostelResident   = "Hostel"
	HostelDayScholar = "Day Scholar"
)

type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Hostel     string    `json:"hostel"`
	Timestamp  time.Time `json:"timestamp"`
	CreatedBy  string    `json:"createdBy,omitempty"`
}

// CreateRequest is the body of POST /api/notifications.
type CreateRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Hostel     string `json:"hostel"`
	CreatedBy  string `json:"createdBy"`
}

// HostelValue maps a user type onto the hostel targeting axis. The strings
// are compared case-sensitively against Notification.Hostel.
func HostelValue(userType string) string {
	if userType == "hostel" {
		return HostelResident
	}
	return HostelDayScholar
}
