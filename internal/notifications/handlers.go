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
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultCreatedBy = "admin@kec.edu"

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetNotifications serves GET /api/notifications. With all three filter
// params present it returns only the notifications visible to that consumer;
// otherwise the full list (admin view).
func (h *Handler) GetNotifications(c *gin.Context) {
	department := c.Query("department")
	year := c.Query("year")
	userType := c.Query("userType")

	if department != "" && year != "" && userType != "" {
		filtered, err := h.repo.GetFiltered(department, year, userType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, filtered)
		return
	}

	all, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}

// PostNotification creates a notification from an admin panel submission.
func (h *Handler) PostNotification(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Title == "" || req.Message == "" || req.Department == "" || req.Year == "" || req.Hostel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = defaultCreatedBy
	}

	n, err := h.repo.Create(req.Title, req.Message, req.Department, req.Year, req.Hostel, createdBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "notification": n})
}

// DeleteNotification serves DELETE /api/notifications?id=.
func (h *Handler) DeleteNotification(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification ID is required"})
		return
	}

	removed, err := h.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
