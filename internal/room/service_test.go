package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rooms map[string]*Room

	lastFilter      Filter
	freeBetweenFrom time.Time
	freeBetweenTo   time.Time
	freeRooms       []*Room
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: make(map[string]*Room)}
}

func (f *fakeRepo) Create(ctx context.Context, r *Room) error {
	if _, exists := f.rooms[r.Number]; exists {
		return ErrNumberTaken
	}
	r.IsAvailable = true
	r.CreatedAt = time.Now()
	f.rooms[r.Number] = r
	return nil
}

func (f *fakeRepo) GetByNumber(ctx context.Context, number string) (*Room, error) {
	r, ok := f.rooms[number]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	f.lastFilter = filter
	out := make([]*Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		if filter.AvailableOnly && !r.IsAvailable {
			continue
		}
		out = append(out, r)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, r *Room) error {
	if _, ok := f.rooms[r.Number]; !ok {
		return ErrNotFound
	}
	f.rooms[r.Number] = r
	return nil
}

func (f *fakeRepo) FreeBetween(ctx context.Context, checkIn, checkOut time.Time, category Category, roomType Type) ([]*Room, error) {
	f.freeBetweenFrom = checkIn
	f.freeBetweenTo = checkOut
	return f.freeRooms, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestServiceCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name: "Valid room",
			req:  CreateRequest{Number: "101", Type: TypeAC, Price: 1200, Capacity: 2},
		},
		{
			name:    "Blank number",
			req:     CreateRequest{Number: "  ", Type: TypeAC, Price: 1200, Capacity: 2},
			wantErr: ErrEmptyNumber,
		},
		{
			name:    "Unknown type",
			req:     CreateRequest{Number: "101", Type: "deluxe", Price: 1200, Capacity: 2},
			wantErr: ErrInvalidType,
		},
		{
			name:    "Unknown category",
			req:     CreateRequest{Number: "101", Category: "penthouse", Type: TypeAC, Price: 1200, Capacity: 2},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "Zero price",
			req:     CreateRequest{Number: "101", Type: TypeAC, Price: 0, Capacity: 2},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "Zero capacity",
			req:     CreateRequest{Number: "101", Type: TypeAC, Price: 1200, Capacity: 0},
			wantErr: ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			r, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "101", r.Number)
			assert.True(t, r.IsAvailable, "new rooms start available")
		})
	}

	t.Run("Duplicate number conflicts", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Create(context.Background(), CreateRequest{Number: "101", Type: TypeAC, Price: 1200, Capacity: 2})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), CreateRequest{Number: "101", Type: TypeNonAC, Price: 900, Capacity: 3})
		assert.ErrorIs(t, err, ErrNumberTaken)
	})
}

func TestServiceUpdate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{Number: "205", Type: TypeNonAC, Price: 800, Capacity: 3})
	require.NoError(t, err)

	t.Run("Partial update keeps untouched fields", func(t *testing.T) {
		price := 950.0
		r, err := svc.Update(context.Background(), "205", UpdateRequest{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 950.0, r.Price)
		assert.Equal(t, 3, r.Capacity)
		assert.Equal(t, TypeNonAC, r.Type)
	})

	t.Run("Invalid price rejected", func(t *testing.T) {
		price := -1.0
		_, err := svc.Update(context.Background(), "205", UpdateRequest{Price: &price})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Unknown room", func(t *testing.T) {
		price := 950.0
		_, err := svc.Update(context.Background(), "999", UpdateRequest{Price: &price})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceAvailability(t *testing.T) {
	t.Run("Date range uses the booking ledger", func(t *testing.T) {
		repo := newFakeRepo()
		repo.freeRooms = []*Room{{Number: "101", Type: TypeAC}}
		svc := NewService(repo)

		rooms, mode, err := svc.Availability(context.Background(), AvailabilityQuery{
			CheckIn:  date(2026, 9, 10),
			CheckOut: date(2026, 9, 12),
		})
		require.NoError(t, err)

		assert.Equal(t, ModeRange, mode)
		assert.Len(t, rooms, 1)
		assert.Equal(t, date(2026, 9, 10), repo.freeBetweenFrom)
		assert.Equal(t, date(2026, 9, 12), repo.freeBetweenTo)
	})

	t.Run("No dates falls back to the flag", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), CreateRequest{Number: "101", Type: TypeAC, Price: 1200, Capacity: 2})
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), CreateRequest{Number: "102", Type: TypeAC, Price: 1200, Capacity: 2})
		require.NoError(t, err)
		repo.rooms["102"].IsAvailable = false

		rooms, mode, err := svc.Availability(context.Background(), AvailabilityQuery{})
		require.NoError(t, err)

		assert.Equal(t, ModeFlag, mode)
		assert.Len(t, rooms, 1)
		assert.Equal(t, "101", rooms[0].Number)
		assert.True(t, repo.lastFilter.AvailableOnly)
	})

	t.Run("Inverted range rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, _, err := svc.Availability(context.Background(), AvailabilityQuery{
			CheckIn:  date(2026, 9, 12),
			CheckOut: date(2026, 9, 10),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Half range rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, _, err := svc.Availability(context.Background(), AvailabilityQuery{
			CheckIn: date(2026, 9, 10),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Invalid filters rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, _, err := svc.Availability(context.Background(), AvailabilityQuery{Category: "penthouse"})
		assert.ErrorIs(t, err, ErrInvalidCategory)

		_, _, err = svc.Availability(context.Background(), AvailabilityQuery{Type: "deluxe"})
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}
