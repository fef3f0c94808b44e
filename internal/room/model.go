package room

import (
	"net/http"
	"time"

	"github.com/oakstay/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "room not found")
	ErrNumberTaken      = apperror.New(http.StatusConflict, "room number already exists")
	ErrEmptyNumber      = apperror.New(http.StatusBadRequest, "room number is required")
	ErrInvalidType      = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrInvalidCategory  = apperror.New(http.StatusBadRequest, "invalid room category")
	ErrInvalidPrice     = apperror.New(http.StatusBadRequest, "price must be greater than zero")
	ErrInvalidCapacity  = apperror.New(http.StatusBadRequest, "capacity must be greater than zero")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-in date must be before check-out date")
)

// Type is the climate/comfort class of a room.
type Type string

const (
	TypeAC      Type = "ac"
	TypeNonAC   Type = "non_ac"
	TypeGeneral Type = "general"
)

func ValidType(t Type) bool {
	switch t {
	case TypeAC, TypeNonAC, TypeGeneral:
		return true
	}
	return false
}

// Category is the optional pricing tier of a room.
type Category string

const (
	CategorySuite    Category = "suite"
	CategoryStandard Category = "standard"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategorySuite, CategoryStandard:
		return true
	}
	return false
}

// Room represents a bookable hotel room. The room number is its identity;
// rooms are provisioned once and never deleted.
//
// IsAvailable is a coarse marker toggled by reservation and checkout. It is
// NOT consulted by date-range availability queries, which always derive the
// answer from the booking ledger.
type Room struct {
	Number      string
	Category    Category // empty when the deployment doesn't tier rooms
	Type        Type
	Price       float64 // per night
	Capacity    int
	Amenities   []string
	IsAvailable bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Category      Category
	Type          Type
	AvailableOnly bool // flag-only filter, see AvailabilityQuery for the real thing
	Page          int
	PageSize      int
}

// AvailabilityMode labels which query answered an availability request.
type AvailabilityMode string

const (
	// ModeRange means the answer was derived from the booking ledger's
	// date-overlap scan. This is the authoritative mode.
	ModeRange AvailabilityMode = "range"
	// ModeFlag means only the cached is_available flag was consulted
	// because the caller supplied no date range. Degraded: it cannot tell
	// a room booked for a past range from one booked for the query range.
	ModeFlag AvailabilityMode = "flag"
)

// AvailabilityQuery asks which rooms are free for [CheckIn, CheckOut).
// When both dates are zero the flag-only mode is used.
type AvailabilityQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Category Category
	Type     Type
}
