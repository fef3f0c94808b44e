package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware ...gin.HandlerFunc) {
	group := g.Group("/proofs")

	// Guests upload proofs without authentication, before the booking exists.
	group.POST("", h.Upload)

	// === Admin Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware...)
	{
		adminGroup.GET("/:id", h.Serve)
		adminGroup.GET("/:id/thumbnail", h.ServeThumbnail)
		adminGroup.DELETE("/:id", h.Delete)
	}
}
