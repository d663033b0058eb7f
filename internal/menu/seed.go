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

import "fmt"

var sampleWeek = []struct {
	day       string
	breakfast []string
	lunch     []string
	dinner    []string
}{
	{
		day:       "monday",
		breakfast: []string{"Idli & Sambar", "Dosa", "Chutney"},
		lunch:     []string{"Rice", "Dal", "Mixed Vegetables", "Pickle"},
		dinner:    []string{"Chapati", "Paneer Curry", "Dal", "Salad"},
	},
	{
		day:       "tuesday",
		breakfast: []string{"Poha", "Tea", "Banana"},
		lunch:     []string{"Rice", "Sambar", "Brinjal Curry", "Rasam", "Curd"},
		dinner:    []string{"Fried Rice", "Manchurian", "Soup"},
	},
	{
		day:       "wednesday",
		breakfast: []string{"Paratha", "Curd", "Pickle"},
		lunch:     []string{"Biryani", "Raita", "Chicken Curry", "Salad"},
		dinner:    []string{"Chapati", "Dal Fry", "Aloo Gobi", "Salad"},
	},
	{
		day:       "thursday",
		breakfast: []string{"Upma", "Sambar", "Coconut Chutney"},
		lunch:     []string{"Rice", "Rajma", "Jeera Aloo", "Pickle"},
		dinner:    []string{"Noodles", "Veg Manchurian", "Soup"},
	},
	{
		day:       "friday",
		breakfast: []string{"Bread & Jam", "Boiled Eggs", "Tea"},
		lunch:     []string{"Rice", "Dal Tadka", "Mix Veg", "Curd"},
		dinner:    []string{"Chapati", "Chole", "Bhature", "Salad"},
	},
	{
		day:       "saturday",
		breakfast: []string{"Dosa", "Sambar", "Coconut Chutney"},
		lunch:     []string{"Rice", "Dal", "Baingan Bharta", "Rasam"},
		dinner:    []string{"Paratha", "Paneer Butter Masala", "Dal", "Salad"},
	},
	{
		day:       "sunday",
		breakfast: []string{"Puri", "Aloo Sabzi", "Halwa"},
		lunch:     []string{"Rice", "Sambar", "Avial", "Papad", "Payasam"},
		dinner:    []string{"Chapati", "Dal Makhani", "Veg Kofta", "Salad"},
	},
}

// Seed loads the fixed seven-day sample week if the menu tables are empty.
// Called explicitly at startup so there is no order-of-first-access guessing.
func Seed(r *Repository) error {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM day_menus").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, d := range sampleWeek {
		m := DayMenu{
			Day:       d.day,
			Breakfast: seedItems(d.day, MealBreakfast, d.breakfast),
			Lunch:     seedItems(d.day, MealLunch, d.lunch),
			Dinner:    seedItems(d.day, MealDinner, d.dinner),
		}
		if err := r.UpdateDayMenu(d.day, m); err != nil {
			return err
		}
	}
	return nil
}

func seedItems(day, meal string, names []string) []MenuItem {
	items := make([]MenuItem, 0, len(names))
	for idx, name := range names {
		items = append(items, MenuItem{
			ID:   fmt.Sprintf("%s-%s-%d", day, meal, idx),
			Name: name,
		})
	}
	return items
}
