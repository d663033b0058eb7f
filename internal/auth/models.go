package auth

import "time"

// UserType distinguishes hostel residents from day scholars
type UserType string

const (
	UserTypeHostel     UserType = "hostel"
	UserTypeDayScholar UserType = "day_scholar"
)

// User represents a registered portal account. The password hash never
// leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Department   string    `json:"department"`
	Year         string    `json:"year"`
	UserType     UserType  `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session represents a server-side user session
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Department string   `json:"department"`
	Year       string   `json:"year"`
	UserType   UserType `json:"userType"`
}

// UserUpdate carries the updatable user fields; nil means leave unchanged.
// ID, email and creation time are immutable once assigned.
type UserUpdate struct {
	Password   *string
	Department *string
	Year       *string
	UserType   *UserType
}
