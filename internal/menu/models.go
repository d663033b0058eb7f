package menu

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DayMenu struct {
	Day       string     `json:"day"`
	Date      string     `json:"date,omitempty"`
	Breakfast []MenuItem `json:"breakfast"`
	Lunch     []MenuItem `json:"lunch"`
	Dinner    []MenuItem `json:"dinner"`
}

// WeeklyMenu maps the lowercase weekday name to that day's menu.
type WeeklyMenu map[string]DayMenu

// Weekdays are the seven fixed day keys, in display order.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// UpdateRequest is the body of POST /api/menu.
type UpdateRequest struct {
	Day  string   `json:"day"`
	Menu *DayMenu `json:"menu"`
}
