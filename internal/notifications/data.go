//   This project is the backend API for the KEC campus portal. Weekly hostel mess menus and role-targeted notifications for KEC students, plus the endpoints backing the portal admin panel.
//   Portal API Copyright (C) 2025 KEC Campus Portal Team
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
package notifications

import (
	"database/sql"
	"time"

	"kec-portal/internal/common"
)

type Repository struct {
	db *sql.DB

	// now is swapped out in tests to pin timestamps
	now func() time.Time
}

// NewRepository creates a new notifications repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// GetAll returns every notification, newest first.
func (r *Repository) GetAll() ([]Notification, error) {
	rows, err := r.db.Query(`
		SELECT id, title, message, department, year, hostel, timestamp, created_by
		FROM notifications
		ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// GetFiltered returns the notifications visible to a consumer with the given
// department, year and user type, newest first. A notification is visible
// when every targeting axis is either the "All" wildcard or an exact
// (case-sensitive) match; the user type is mapped onto the hostel axis via
// HostelValue.
func (r *Repository) GetFiltered(department, year, userType string) ([]Notification, error) {
	hostelValue := HostelValue(userType)

	rows, err := r.db.Query(`
		SELECT id, title, message, department, year, hostel, timestamp, created_by
		FROM notifications
		WHERE (department = ? OR department = ?)
		  AND (year = ? OR year = ?)
		  AND (hostel = ? OR hostel = ?)
		ORDER BY timestamp DESC`,
		TargetAll, department,
		TargetAll, year,
		TargetAll, hostelValue,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// Create stores a new notification, assigning its id and timestamp.
func (r *Repository) Create(title, message, department, year, hostel, createdBy string) (*Notification, error) {
	n := Notification{
		ID:         common.NewID(),
		Title:      title,
		Message:    message,
		Department: department,
		Year:       year,
		Hostel:     hostel,
		Timestamp:  r.now(),
		CreatedBy:  createdBy,
	}

	_, err := r.db.Exec(`
		INSERT INTO notifications (id, title, message, department, year, hostel, timestamp, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Message, n.Department, n.Year, n.Hostel, n.Timestamp, nullableString(n.CreatedBy),
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete removes a notification by id. Returns whether a removal occurred;
// an unknown id is not an error.
func (r *Repository) Delete(id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanNotifications(rows *sql.Rows) ([]Notification, error) {
	// Avoid nil slices in JSON response
	result := []Notification{}
	for rows.Next() {
		var n Notification
		var createdBy sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Department, &n.Year, &n.Hostel, &n.Timestamp, &createdBy); err != nil {
			return nil, err
		}
		if createdBy.Valid {
			n.CreatedBy = createdBy.String
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
