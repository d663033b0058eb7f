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
package menu

import (
	"database/sql"
	"strings"
	"time"
)

type Repository struct {
	db *sql.DB

	// now is swapped out in tests to pin the weekday
	now func() time.Time
}

// NewRepository creates a new menu repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// GetDayMenu returns the stored menu for a weekday (case-insensitive).
// Returns (nil, nil) when the day is unknown or has no data.
func (r *Repository) GetDayMenu(day string) (*DayMenu, error) {
	key := strings.ToLower(day)

	var m DayMenu
	var date sql.NullString
	err := r.db.QueryRow("SELECT day, date FROM day_menus WHERE day = ?", key).Scan(&m.Day, &date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if date.Valid {
		m.Date = date.String
	}

	if err := r.loadItems(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTodayMenu resolves the current weekday name and delegates to GetDayMenu.
func (r *Repository) GetTodayMenu() (*DayMenu, error) {
	today := strings.ToLower(r.now().Weekday().String())
	return r.GetDayMenu(today)
}

// GetWeeklyMenu returns every stored day keyed by weekday name.
func (r *Repository) GetWeeklyMenu() (WeeklyMenu, error) {
	rows, err := r.db.Query("SELECT day, date FROM day_menus")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weekly := WeeklyMenu{}
	for rows.Next() {
		var m DayMenu
		var date sql.NullString
		if err := rows.Scan(&m.Day, &date); err != nil {
			return nil, err
		}
		if date.Valid {
			m.Date = date.String
		}
		weekly[m.Day] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for day, m := range weekly {
		if err := r.loadItems(&m); err != nil {
			return nil, err
		}
		weekly[day] = m
	}
	return weekly, nil
}

// UpdateDayMenu replaces the stored entry for the (lower-cased) day key
// wholesale. The caller owns validation: menu.Day is not checked against day
// and item ids are stored as supplied.
func (r *Repository) UpdateDayMenu(day string, m DayMenu) error {
	key := strings.ToLower(day)

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	// Defer a rollback in case anything fails.
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
		INSERT INTO day_menus (day, date) VALUES (?, ?)
		ON CONFLICT(day) DO UPDATE SET date = excluded.date`,
		key, nullableString(m.Date),
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM menu_items WHERE day = ?", key); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO menu_items (day, meal, position, item_id, name, description)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	meals := []struct {
		name  string
		items []MenuItem
	}{
		{MealBreakfast, m.Breakfast},
		{MealLunch, m.Lunch},
		{MealDinner, m.Dinner},
	}
	for _, meal := range meals {
		for pos, item := range meal.items {
			if _, err := stmt.Exec(key, meal.name, pos, item.ID, item.Name, nullableString(item.Description)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// loadItems fills the three meal lists for a day, preserving display order.
func (r *Repository) loadItems(m *DayMenu) error {
	// Avoid nil slices in JSON response
	m.Breakfast = []MenuItem{}
	m.Lunch = []MenuItem{}
	m.Dinner = []MenuItem{}

	rows, err := r.db.Query(`
		SELECT meal, item_id, name, description
		FROM menu_items
		WHERE day = ?
		ORDER BY meal, position`, m.Day)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var meal string
		var item MenuItem
		var desc sql.NullString
		if err := rows.Scan(&meal, &item.ID, &item.Name, &desc); err != nil {
			return err
		}
		if desc.Valid {
			item.Description = desc.String
		}
		switch meal {
		case MealBreakfast:
			m.Breakfast = append(m.Breakfast, item)
		case MealLunch:
			m.Lunch = append(m.Lunch, item)
		case MealDinner:
			m.Dinner = append(m.Dinner, item)
		}
	}
	return rows.Err()
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
