package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oakstay/hotel-booking-backend/internal/admin"
	adminHttp "github.com/oakstay/hotel-booking-backend/internal/admin/http"
	"github.com/oakstay/hotel-booking-backend/internal/auth"
	"github.com/oakstay/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/oakstay/hotel-booking-backend/internal/booking/http"
	"github.com/oakstay/hotel-booking-backend/internal/proof"
	proofHttp "github.com/oakstay/hotel-booking-backend/internal/proof/http"
	"github.com/oakstay/hotel-booking-backend/internal/room"
	roomHttp "github.com/oakstay/hotel-booking-backend/internal/room/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string // comma-separated list of allowed origins in production

	AdminService   admin.Service
	RoomService    room.Service
	BookingService booking.Service
	ProofService   proof.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for
// every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		origins := strings.Split(cfg.ProdOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // local frontend
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request carries a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks the authenticated role.
	adminMiddleware := RequireAdmin()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	adminHandler := adminHttp.NewHandler(cfg.AdminService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	proofHandler := proofHttp.NewHandler(cfg.ProofService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		adminHttp.RegisterRoutes(v1, adminHandler)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		proofHttp.RegisterRoutes(v1, proofHandler, authMiddleware, adminMiddleware)
	}

	return r
}
