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
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles authentication endpoints
type Handler struct {
	repo         *Repository
	sessionStore *SessionStore
}

// NewHandler creates a new auth handler
func NewHandler(repo *Repository, sessionStore *SessionStore) *Handler {
	return &Handler{
		repo:         repo,
		sessionStore: sessionStore,
	}
}

// Login validates credentials and opens a session.
// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Deliberately generic: never disclose which of the two was wrong
	if user == nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	session, err := h.sessionStore.CreateSession(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	h.sessionStore.SetSessionCookie(c, session.ID)

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Register creates a new account. The duplicate-email check happens here,
// before the store is asked to create anything.
// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Department == "" || req.Year == "" || req.UserType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if req.UserType != UserTypeHostel && req.UserType != UserTypeDayScholar {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user type"})
		return
	}

	existing, err := h.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	user, err := h.repo.CreateUser(req.Email, req.Password, req.Department, req.Year, req.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Me returns the current authenticated user
// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	user := GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout deletes the current session and clears the cookie
// GET /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	sessionID, err := h.sessionStore.GetSessionFromCookie(c)
	if err == nil && sessionID != "" {
		if err := h.sessionStore.DeleteSession(sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete session"})
			return
		}
	}
	h.sessionStore.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
