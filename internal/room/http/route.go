package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware ...gin.HandlerFunc) {
	group := g.Group("/rooms")

	// Availability is the guest-facing entry point.
	group.GET("/availability", h.Availability)

	// === Admin Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware...)
	{
		adminGroup.POST("", h.Create)
		adminGroup.GET("", h.List)
		adminGroup.GET("/:number", h.Get)
		adminGroup.PATCH("/:number", h.Update)
	}
}
