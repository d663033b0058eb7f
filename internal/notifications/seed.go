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

import "time"

// Seed loads four demo notifications with varied targeting if the table is
// empty. Called explicitly at startup.
func Seed(r *Repository) error {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM notifications").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := r.now()
	demo := []Notification{
		{
			ID:         "1",
			Title:      "Welcome to KEC Campus!",
			Message:    "Welcome all students to the new academic year. Stay updated with campus notifications.",
			Department: TargetAll,
			Year:       TargetAll,
			Hostel:     TargetAll,
			Timestamp:  now,
			CreatedBy:  "admin@kec.edu",
		},
		{
			ID:         "2",
			Title:      "CSE Department Meeting",
			Message:    "All CSE students are requested to attend the department meeting on Friday at 3 PM.",
			Department: "CSE",
			Year:       TargetAll,
			Hostel:     TargetAll,
			Timestamp:  now.Add(-24 * time.Hour),
			CreatedBy:  "admin@kec.edu",
		},
		{
			ID:         "3",
			Title:      "Hostel Mess Timing Change",
			Message:    "Hostel mess timing will be changed from next week. Breakfast: 7-9 AM, Lunch: 12-2 PM, Dinner: 7-9 PM.",
			Department: TargetAll,
			Year:       TargetAll,
			Hostel:     HostelResident,
			Timestamp:  now.Add(-1 * time.Hour),
			CreatedBy:  "admin@kec.edu",
		},
		{
			ID:         "4",
			Title:      "Third Year Project Guidelines",
			Message:    "Third year students, please submit your project proposals by next Monday.",
			Department: TargetAll,
			Year:       "3",
			Hostel:     TargetAll,
			Timestamp:  now.Add(-2 * time.Hour),
			CreatedBy:  "admin@kec.edu",
		},
	}

	for _, n := range demo {
		_, err := r.db.Exec(`
			INSERT INTO notifications (id, title, message, department, year, hostel, timestamp, created_by)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Message, n.Department, n.Year, n.Hostel, n.Timestamp, n.CreatedBy,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
