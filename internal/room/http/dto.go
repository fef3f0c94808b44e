package http

import (
	"time"

	"github.com/oakstay/hotel-booking-backend/internal/pkg/request"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

const dateLayout = "2006-01-02"

type CreateRoomBody struct {
	Number    string   `json:"number" binding:"required"`
	Category  string   `json:"category" binding:"omitempty,oneof=suite standard"`
	Type      string   `json:"type" binding:"required,oneof=ac non_ac general"`
	Price     float64  `json:"price" binding:"required,gt=0"`
	Capacity  int      `json:"capacity" binding:"required,gt=0"`
	Amenities []string `json:"amenities"`
}

type UpdateRoomBody struct {
	Category  *string  `json:"category" binding:"omitempty,oneof=suite standard"`
	Price     *float64 `json:"price" binding:"omitempty,gt=0"`
	Capacity  *int     `json:"capacity" binding:"omitempty,gt=0"`
	Amenities []string `json:"amenities"`
}

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	Category      string `form:"category" binding:"omitempty,oneof=suite standard"`
	Type          string `form:"type" binding:"omitempty,oneof=ac non_ac general"`
	AvailableOnly bool   `form:"available_only"`
}

// AvailabilityRequest defines query parameters for the availability check.
// Dates are optional but must come as a pair.
type AvailabilityRequest struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
	Category string `form:"category" binding:"omitempty,oneof=suite standard"`
	Type     string `form:"type" binding:"omitempty,oneof=ac non_ac general"`
}

type RoomResponse struct {
	Number      string    `json:"number"`
	Category    string    `json:"category,omitempty"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Amenities   []string  `json:"amenities"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		Number:      r.Number,
		Category:    string(r.Category),
		Type:        string(r.Type),
		Price:       r.Price,
		Capacity:    r.Capacity,
		Amenities:   r.Amenities,
		IsAvailable: r.IsAvailable,
		CreatedAt:   r.CreatedAt,
	}
}

type AvailabilityResponse struct {
	Mode  string         `json:"mode"`
	Rooms []RoomResponse `json:"rooms"`
}
