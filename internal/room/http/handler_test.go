package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakstay/hotel-booking-backend/internal/room"
)

type fakeService struct {
	availQuery room.AvailabilityQuery
	availRooms []*room.Room
	availMode  room.AvailabilityMode
	availErr   error
}

func (f *fakeService) Create(ctx context.Context, req room.CreateRequest) (*room.Room, error) {
	return &room.Room{
		Number:      req.Number,
		Category:    req.Category,
		Type:        req.Type,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}, nil
}

func (f *fakeService) GetByNumber(ctx context.Context, number string) (*room.Room, error) {
	return nil, room.ErrNotFound
}

func (f *fakeService) List(ctx context.Context, filter room.Filter) ([]*room.Room, int, error) {
	return nil, 0, nil
}

func (f *fakeService) Update(ctx context.Context, number string, req room.UpdateRequest) (*room.Room, error) {
	return nil, room.ErrNotFound
}

func (f *fakeService) Availability(ctx context.Context, q room.AvailabilityQuery) ([]*room.Room, room.AvailabilityMode, error) {
	f.availQuery = q
	if f.availErr != nil {
		return nil, "", f.availErr
	}
	return f.availRooms, f.availMode, nil
}

func setupRouter(svc room.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAvailabilityEndpoint(t *testing.T) {
	t.Run("Date range query reports range mode", func(t *testing.T) {
		svc := &fakeService{
			availRooms: []*room.Room{{Number: "101", Type: room.TypeAC, Price: 1200}},
			availMode:  room.ModeRange,
		}
		r := setupRouter(svc)

		w := get(r, "/v1/rooms/availability?check_in=2026-09-10&check_out=2026-09-12&type=ac")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "range", resp.Mode)
		require.Len(t, resp.Rooms, 1)
		assert.Equal(t, "101", resp.Rooms[0].Number)

		assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), svc.availQuery.CheckIn)
		assert.Equal(t, room.TypeAC, svc.availQuery.Type)
	})

	t.Run("No dates reports flag mode", func(t *testing.T) {
		svc := &fakeService{availMode: room.ModeFlag}
		r := setupRouter(svc)

		w := get(r, "/v1/rooms/availability")
		require.Equal(t, http.StatusOK, w.Code)

		var resp AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "flag", resp.Mode)
		assert.True(t, svc.availQuery.CheckIn.IsZero())
	})

	t.Run("Malformed date returns 400", func(t *testing.T) {
		r := setupRouter(&fakeService{availMode: room.ModeRange})

		w := get(r, "/v1/rooms/availability?check_in=notadate&check_out=2026-09-12")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Inverted range maps to 400", func(t *testing.T) {
		svc := &fakeService{availErr: room.ErrInvalidDateRange}
		r := setupRouter(svc)

		w := get(r, "/v1/rooms/availability?check_in=2026-09-12&check_out=2026-09-10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown type rejected by binding", func(t *testing.T) {
		r := setupRouter(&fakeService{availMode: room.ModeRange})

		w := get(r, "/v1/rooms/availability?type=deluxe")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
