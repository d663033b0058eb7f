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
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler holds the Repository so the HTTP layer stays a thin translation to
// store operations
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetMenu serves GET /api/menu with the optional day= and today=true filters.
func (h *Handler) GetMenu(c *gin.Context) {
	day := c.Query("day")
	today := c.Query("today")

	if today == "true" {
		m, err := h.repo.GetTodayMenu()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if m == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		c.JSON(http.StatusOK, m)
		return
	}

	if day != "" {
		m, err := h.repo.GetDayMenu(day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if m == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		c.JSON(http.StatusOK, m)
		return
	}

	weekly, err := h.repo.GetWeeklyMenu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// PostMenu replaces one day's menu wholesale.
func (h *Handler) PostMenu(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Day == "" || req.Menu == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day and menu are required"})
		return
	}

	if err := h.repo.UpdateDayMenu(req.Day, *req.Menu); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menu": req.Menu})
}
