package auth

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kec-portal/internal/common"
)

// Repository provides access to user and session storage
type Repository struct {
	db *sql.DB

	// now is swapped out in tests to pin creation times
	now func() time.Time
}

// NewRepository creates a new auth repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// GetUserByEmail returns a user by email. The match is case-insensitive;
// email is the external identity for login.
func (r *Repository) GetUserByEmail(email string) (*User, error) {
	var u User
	err := r.db.QueryRow(`
		SELECT id, email, password_hash, department, year, user_type, created_at
		FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Department, &u.Year, &u.UserType, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns a user by internal id
func (r *Repository) GetUserByID(id string) (*User, error) {
	var u User
	err := r.db.QueryRow(`
		SELECT id, email, password_hash, department, year, user_type, created_at
		FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Department, &u.Year, &u.UserType, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAllUsers returns every registered user
func (r *Repository) GetAllUsers() ([]User, error) {
	rows, err := r.db.Query(`
		SELECT id, email, password_hash, department, year, user_type, created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Department, &u.Year, &u.UserType, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser creates a new user, assigning its id and creation time. The
// password is stored as a bcrypt hash. Duplicate-email rejection is the
// caller's job (the register handler checks first); the unique index on
// email backs that up at the storage level.
func (r *Repository) CreateUser(email, password, department, year string, userType UserType) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:           common.NewID(),
		Email:        email,
		PasswordHash: string(hash),
		Department:   department,
		Year:         year,
		UserType:     userType,
		CreatedAt:    r.now(),
	}

	_, err = r.db.Exec(`
		INSERT INTO users (id, email, password_hash, department, year, user_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.Email, u.PasswordHash, u.Department, u.Year, u.UserType, u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser merges the supplied fields over an existing record.
// Returns (nil, nil) when the id is unknown.
func (r *Repository) UpdateUser(id string, update UserUpdate) (*User, error) {
	existing, err := r.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if _, err := r.db.Exec("UPDATE users SET password_hash = ? WHERE id = ?", string(hash), id); err != nil {
			return nil, err
		}
	}
	if update.Department != nil {
		if _, err := r.db.Exec("UPDATE users SET department = ? WHERE id = ?", *update.Department, id); err != nil {
			return nil, err
		}
	}
	if update.Year != nil {
		if _, err := r.db.Exec("UPDATE users SET year = ? WHERE id = ?", *update.Year, id); err != nil {
			return nil, err
		}
	}
	if update.UserType != nil {
		if _, err := r.db.Exec("UPDATE users SET user_type = ? WHERE id = ?", *update.UserType, id); err != nil {
			return nil, err
		}
	}

	return r.GetUserByID(id)
}

// CheckPassword reports whether the supplied password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
