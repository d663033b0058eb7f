package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all auth-related routes
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, middleware *Middleware) {
	a := rg.Group("/auth")
	{
		// Public routes
		a.POST("/login", h.Login)
		a.POST("/register", h.Register)

		// Session-protected routes
		sessionProtected := a.Group("")
		sessionProtected.Use(middleware.RequireSession())
		{
			sessionProtected.GET("/me", h.Me)
			sessionProtected.GET("/logout", h.Logout)
		}
	}
}
