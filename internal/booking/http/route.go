package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware ...gin.HandlerFunc) {
	group := g.Group("/bookings")

	// Guests create bookings without authentication.
	group.POST("", h.Create)

	// === Admin Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware...)
	{
		adminGroup.GET("", h.List)
		adminGroup.GET("/:id", h.Get)
		adminGroup.POST("/:id/payment", h.CompletePayment)
		adminGroup.POST("/:id/checkout", h.Checkout)
	}
}
