package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakstay/hotel-booking-backend/internal/admin"
	"github.com/oakstay/hotel-booking-backend/internal/api"
	"github.com/oakstay/hotel-booking-backend/internal/auth"
	"github.com/oakstay/hotel-booking-backend/internal/booking"
	"github.com/oakstay/hotel-booking-backend/internal/config"
	"github.com/oakstay/hotel-booking-backend/internal/notification"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/storage"
	"github.com/oakstay/hotel-booking-backend/internal/proof"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	AdminEmail        string
	AdminPasswordHash string

	SMTP        config.SMTP
	StoragePath string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// Admin Module
	adminService := admin.NewService(admin.Credentials{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
	}, passwordHasher, jwtManager)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Booking Module
	mailer := notification.NewMailer(cfg.SMTP, cfg.AdminEmail)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, mailer)

	// Proof Module
	proofRepo := proof.NewPgxRepository(cfg.DBPool)
	proofService := proof.NewService(proofRepo, store)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		AdminService:   adminService,
		RoomService:    roomService,
		BookingService: bookingService,
		ProofService:   proofService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
