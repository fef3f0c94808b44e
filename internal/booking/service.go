package booking

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oakstay/hotel-booking-backend/internal/room"
)

// GuestInfo carries the guest fields of a booking request. Name and phone
// are required; email and address are optional.
type GuestInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// RoomSelection is one requested room with its price at booking time.
type RoomSelection struct {
	RoomNumber string
	Price      float64
	Category   room.Category
}

type CreateRequest struct {
	Guest           GuestInfo
	RoomType        room.Type
	Selections      []RoomSelection
	CheckIn         time.Time
	CheckOut        time.Time
	PaymentMethod   string
	SpecialRequests string
	ProofRef        string
}

type Service interface {
	// Create validates the request, atomically records the booking and
	// marks its rooms unavailable, then sends confirmation email
	// best-effort. A failed notification never fails the booking; it only
	// shows up as EmailSent=false on the returned record.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// CompletePayment transitions the booking's payment status from
	// pending to completed. The transition is one-way: a repeated call is
	// rejected with ErrPaymentCompleted.
	CompletePayment(ctx context.Context, id string) (*Booking, error)

	// Checkout releases the booking's rooms and marks the booking
	// completed, returning the released room numbers. Caller-triggered;
	// the checkout date is not validated.
	Checkout(ctx context.Context, id string) ([]string, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	name := strings.TrimSpace(req.Guest.Name)
	if name == "" {
		return nil, ErrGuestNameRequired
	}
	phone := strings.TrimSpace(req.Guest.Phone)
	if phone == "" {
		return nil, ErrGuestPhoneRequired
	}
	if req.RoomType == "" {
		return nil, ErrRoomTypeRequired
	}
	if !room.ValidType(req.RoomType) {
		return nil, ErrInvalidRoomType
	}
	if len(req.Selections) == 0 {
		return nil, ErrNoRoomsSelected
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, ErrDatesRequired
	}
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidDateRange
	}

	seen := make(map[string]bool, len(req.Selections))
	selected := make([]SelectedRoom, 0, len(req.Selections))
	for _, sel := range req.Selections {
		number := strings.TrimSpace(sel.RoomNumber)
		if number == "" {
			return nil, ErrNoRoomsSelected
		}
		if seen[number] {
			return nil, ErrDuplicateRoom(number)
		}
		seen[number] = true
		if sel.Price <= 0 {
			return nil, ErrInvalidRoomPrice(number)
		}
		if sel.Category != "" && !room.ValidCategory(sel.Category) {
			return nil, room.ErrInvalidCategory
		}
		selected = append(selected, SelectedRoom{
			RoomNumber: number,
			Category:   sel.Category,
			Type:       req.RoomType,
			Price:      sel.Price,
		})
	}

	nights := NightsBetween(req.CheckIn, req.CheckOut)

	b := &Booking{
		GuestName:       name,
		GuestPhone:      phone,
		GuestEmail:      strings.TrimSpace(req.Guest.Email),
		GuestAddress:    strings.TrimSpace(req.Guest.Address),
		Rooms:           selected,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Nights:          nights,
		TotalAmount:     TotalAmount(nights, selected),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		PaymentStatus:   PaymentPending,
		Status:          StatusConfirmed,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		ProofRef:        strings.TrimSpace(req.ProofRef),
	}

	if err := s.repo.CreateReservation(ctx, b); err != nil {
		return nil, err
	}

	// The booking is committed from here on; notification problems are
	// soft failures surfaced through EmailSent only.
	if s.notifier != nil {
		b.EmailSent = s.notifier.Notify(ctx, b)
		if !b.EmailSent {
			slog.Warn("booking confirmation email not sent", "booking_id", b.ID)
		}
		if err := s.repo.SetEmailSent(ctx, b.ID, b.EmailSent); err != nil {
			slog.Warn("failed to persist email_sent flag", "booking_id", b.ID, "error", err.Error())
		}
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) CompletePayment(ctx context.Context, id string) (*Booking, error) {
	if err := s.repo.MarkPaymentCompleted(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Checkout(ctx context.Context, id string) ([]string, error) {
	return s.repo.Checkout(ctx, id)
}
