package http

import (
	"time"

	"github.com/oakstay/hotel-booking-backend/internal/booking"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/request"
)

// DateLayout is the wire format for check-in/check-out dates. Bookings are
// day-granular; times of day are not accepted.
const DateLayout = "2006-01-02"

type GuestBody struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

type SelectionBody struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Category   string  `json:"category" binding:"omitempty,oneof=suite standard"`
}

type CreateBookingBody struct {
	Guest           GuestBody       `json:"guest" binding:"required"`
	RoomType        string          `json:"room_type" binding:"required,oneof=ac non_ac general"`
	Rooms           []SelectionBody `json:"rooms" binding:"required,min=1,dive"`
	CheckIn         string          `json:"check_in" binding:"required"`
	CheckOut        string          `json:"check_out" binding:"required"`
	PaymentMethod   string          `json:"payment_method"`
	SpecialRequests string          `json:"special_requests"`
	ProofRef        string          `json:"proof_ref"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	Status        string `form:"status" binding:"omitempty,oneof=confirmed cancelled completed"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending completed"`
}

type SelectedRoomResponse struct {
	RoomNumber string  `json:"room_number"`
	Category   string  `json:"category,omitempty"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
}

type BookingResponse struct {
	ID              string                 `json:"id"`
	Guest           GuestBody              `json:"guest"`
	Rooms           []SelectedRoomResponse `json:"rooms"`
	CheckIn         string                 `json:"check_in"`
	CheckOut        string                 `json:"check_out"`
	Nights          int                    `json:"nights"`
	TotalAmount     float64                `json:"total_amount"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
	PaymentStatus   string                 `json:"payment_status"`
	Status          string                 `json:"status"`
	SpecialRequests string                 `json:"special_requests,omitempty"`
	ProofRef        string                 `json:"proof_ref,omitempty"`
	EmailSent       bool                   `json:"email_sent"`
	CreatedAt       time.Time              `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	rooms := make([]SelectedRoomResponse, len(b.Rooms))
	for i, sel := range b.Rooms {
		rooms[i] = SelectedRoomResponse{
			RoomNumber: sel.RoomNumber,
			Category:   string(sel.Category),
			Type:       string(sel.Type),
			Price:      sel.Price,
		}
	}

	return BookingResponse{
		ID: b.ID,
		Guest: GuestBody{
			Name:    b.GuestName,
			Phone:   b.GuestPhone,
			Email:   b.GuestEmail,
			Address: b.GuestAddress,
		},
		Rooms:           rooms,
		CheckIn:         b.CheckIn.Format(DateLayout),
		CheckOut:        b.CheckOut.Format(DateLayout),
		Nights:          b.Nights,
		TotalAmount:     b.TotalAmount,
		PaymentMethod:   b.PaymentMethod,
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		ProofRef:        b.ProofRef,
		EmailSent:       b.EmailSent,
		CreatedAt:       b.CreatedAt,
	}
}

type CheckoutResponse struct {
	BookingID   string   `json:"booking_id"`
	RoomNumbers []string `json:"room_numbers"`
}
