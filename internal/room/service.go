package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Number    string
	Category  Category
	Type      Type
	Price     float64
	Capacity  int
	Amenities []string
}

type UpdateRequest struct {
	Category  *Category
	Price     *float64
	Capacity  *int
	Amenities []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByNumber(ctx context.Context, number string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, number string, req UpdateRequest) (*Room, error)

	// Availability returns the rooms free for the queried range and the
	// mode that produced the answer. With a date range the booking ledger
	// is the sole source of truth; without one only the cached flag is
	// checked (degraded, labeled ModeFlag).
	Availability(ctx context.Context, q AvailabilityQuery) ([]*Room, AvailabilityMode, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Number) == "" {
		return nil, ErrEmptyNumber
	}
	if !ValidType(req.Type) {
		return nil, ErrInvalidType
	}
	if req.Category != "" && !ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	r := &Room{
		Number:    strings.TrimSpace(req.Number),
		Category:  req.Category,
		Type:      req.Type,
		Price:     req.Price,
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (*Room, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, number string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if *req.Category != "" && !ValidCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		r.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrInvalidPrice
		}
		r.Price = *req.Price
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		r.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		r.Amenities = req.Amenities
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Availability(ctx context.Context, q AvailabilityQuery) ([]*Room, AvailabilityMode, error) {
	if q.Category != "" && !ValidCategory(q.Category) {
		return nil, "", ErrInvalidCategory
	}
	if q.Type != "" && !ValidType(q.Type) {
		return nil, "", ErrInvalidType
	}

	// No range supplied: fall back to the flag-only listing.
	if q.CheckIn.IsZero() && q.CheckOut.IsZero() {
		rooms, _, err := s.repo.List(ctx, Filter{
			Category:      q.Category,
			Type:          q.Type,
			AvailableOnly: true,
			Page:          1,
			PageSize:      1000,
		})
		if err != nil {
			return nil, "", err
		}
		return rooms, ModeFlag, nil
	}

	if q.CheckIn.IsZero() || q.CheckOut.IsZero() || !q.CheckIn.Before(q.CheckOut) {
		return nil, "", ErrInvalidDateRange
	}

	rooms, err := s.repo.FreeBetween(ctx, q.CheckIn, q.CheckOut, q.Category, q.Type)
	if err != nil {
		return nil, "", err
	}
	return rooms, ModeRange, nil
}
