package auth

// Demo accounts for local development: a hostel student, a day scholar and
// the admin-panel account.
var demoUsers = []struct {
	id         string
	email      string
	password   string
	department string
	year       string
	userType   UserType
}{
	{"1", "student@kec.edu", "password123", "CSE", "3", UserTypeHostel},
	{"2", "dayscholar@kec.edu", "password123", "ECE", "2", UserTypeDayScholar},
	{"3", "admin@kec.edu", "admin123", "Admin", "All", UserTypeHostel},
}

// Seed loads the demo accounts if the users table is empty. Called
// explicitly at startup.
func Seed(r *Repository) error {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, d := range demoUsers {
		u, err := r.CreateUser(d.email, d.password, d.department, d.year, d.userType)
		if err != nil {
			return err
		}
		// Keep the well-known demo ids from the original dataset
		if _, err := r.db.Exec("UPDATE users SET id = ? WHERE id = ?", d.id, u.ID); err != nil {
			return err
		}
	}
	return nil
}
