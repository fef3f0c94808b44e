package booking

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/oakstay/hotel-booking-backend/internal/pkg/apperror"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidDateRange     = apperror.New(http.StatusBadRequest, "check-in date must be before check-out date")
	ErrGuestNameRequired    = apperror.New(http.StatusBadRequest, "guest name is required")
	ErrGuestPhoneRequired   = apperror.New(http.StatusBadRequest, "guest phone is required")
	ErrRoomTypeRequired     = apperror.New(http.StatusBadRequest, "room type is required")
	ErrInvalidRoomType      = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrNoRoomsSelected      = apperror.New(http.StatusBadRequest, "at least one room must be selected")
	ErrPaymentCompleted     = apperror.New(http.StatusConflict, "payment is already completed")
	ErrDatesRequired        = apperror.New(http.StatusBadRequest, "check-in and check-out dates are required")
)

// ErrRoomNotFound names the selected room that does not exist.
func ErrRoomNotFound(number string) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "room %s does not exist", number)
}

// ErrRoomUnavailable names the selected room that is already taken for the
// requested range.
func ErrRoomUnavailable(number string) *apperror.AppError {
	return apperror.Newf(http.StatusConflict, "room %s is not available for the selected dates", number)
}

// ErrRoomTypeMismatch names the selected room whose actual type differs from
// the one the booking was requested with.
func ErrRoomTypeMismatch(number string) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "room %s does not match the requested room type", number)
}

// ErrInvalidRoomPrice names the selection entry carrying a non-positive price.
func ErrInvalidRoomPrice(number string) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "room %s has an invalid price", number)
}

// ErrDuplicateRoom names a room selected more than once in a single booking.
func ErrDuplicateRoom(number string) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "room %s is selected more than once", number)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// SelectedRoom is one entry of a booking's room list. Price and type are
// captured at booking time and stay immutable afterwards, decoupled from any
// later change to the room record.
type SelectedRoom struct {
	RoomNumber string
	Category   room.Category
	Type       room.Type
	Price      float64 // per night, at booking time
}

// Booking is a ledger entry. Its room list and date range never change after
// creation; only PaymentStatus and Status do.
type Booking struct {
	ID              string
	GuestName       string
	GuestPhone      string
	GuestEmail      string
	GuestAddress    string
	Rooms           []SelectedRoom
	CheckIn         time.Time
	CheckOut        time.Time
	Nights          int
	TotalAmount     float64
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	Status          Status
	SpecialRequests string
	ProofRef        string
	EmailSent       bool
	CreatedAt       time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Status        Status
	PaymentStatus PaymentStatus
	Page          int
	PageSize      int
}

// overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect: aStart < bEnd && bStart < aEnd. A checkout day
// never conflicts with a same-day checkin. The repository's SQL predicates
// apply the same rule; this is the in-process reference for tests.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// NightsBetween returns the number of billable nights for the range,
// rounding partial days up, never less than one.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// TotalAmount is nights times the sum of the per-night prices captured on the
// selection entries.
func TotalAmount(nights int, rooms []SelectedRoom) float64 {
	var sum float64
	for _, r := range rooms {
		sum += r.Price
	}
	return float64(nights) * sum
}

// Notifier delivers booking confirmations after a successful reservation.
// Implementations must never panic past this interface; any failure is
// reported as false and must not affect the committed booking.
type Notifier interface {
	Notify(ctx context.Context, b *Booking) bool
}
