package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakstay/hotel-booking-backend/internal/booking"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

type fakeService struct {
	createReq  *booking.CreateRequest
	createResp *booking.Booking
	createErr  error

	paymentErr error
}

func (f *fakeService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	f.createReq = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResp, nil
}

func (f *fakeService) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	if f.createResp != nil && f.createResp.ID == id {
		return f.createResp, nil
	}
	return nil, booking.ErrNotFound
}

func (f *fakeService) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	if f.createResp == nil {
		return nil, 0, nil
	}
	return []*booking.Booking{f.createResp}, 1, nil
}

func (f *fakeService) CompletePayment(ctx context.Context, id string) (*booking.Booking, error) {
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	return f.createResp, nil
}

func (f *fakeService) Checkout(ctx context.Context, id string) ([]string, error) {
	return []string{"101"}, nil
}

func setupRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

func storedBooking() *booking.Booking {
	return &booking.Booking{
		ID:         "11111111-1111-1111-1111-111111111111",
		GuestName:  "Ayesha Rahman",
		GuestPhone: "+8801712345678",
		Rooms: []booking.SelectedRoom{
			{RoomNumber: "101", Type: room.TypeAC, Price: 1200},
		},
		CheckIn:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Nights:        2,
		TotalAmount:   2400,
		PaymentStatus: booking.PaymentPending,
		Status:        booking.StatusConfirmed,
		CreatedAt:     time.Now(),
	}
}

func validBody() map[string]any {
	return map[string]any{
		"guest": map[string]any{
			"name":  "Ayesha Rahman",
			"phone": "+8801712345678",
		},
		"room_type": "ac",
		"rooms": []map[string]any{
			{"room_number": "101", "price": 1200},
		},
		"check_in":  "2026-09-10",
		"check_out": "2026-09-12",
	}
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	t.Run("Valid request returns 201", func(t *testing.T) {
		svc := &fakeService{createResp: storedBooking()}
		r := setupRouter(svc)

		w := postJSON(r, "/v1/bookings", validBody())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", resp.ID)
		assert.Equal(t, "2026-09-10", resp.CheckIn)
		assert.Equal(t, 2, resp.Nights)
		assert.Equal(t, 2400.0, resp.TotalAmount)

		// Dates arrive parsed at the service boundary.
		require.NotNil(t, svc.createReq)
		assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), svc.createReq.CheckIn)
	})

	t.Run("Malformed date returns 400", func(t *testing.T) {
		r := setupRouter(&fakeService{createResp: storedBooking()})

		body := validBody()
		body["check_in"] = "10/09/2026"
		w := postJSON(r, "/v1/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing guest phone returns 400", func(t *testing.T) {
		r := setupRouter(&fakeService{createResp: storedBooking()})

		body := validBody()
		body["guest"] = map[string]any{"name": "Ayesha Rahman"}
		w := postJSON(r, "/v1/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown room type returns 400", func(t *testing.T) {
		r := setupRouter(&fakeService{createResp: storedBooking()})

		body := validBody()
		body["room_type"] = "deluxe"
		w := postJSON(r, "/v1/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Room conflict maps to 409", func(t *testing.T) {
		svc := &fakeService{createErr: booking.ErrRoomUnavailable("101")}
		r := setupRouter(svc)

		w := postJSON(r, "/v1/bookings", validBody())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "101")
	})
}

func TestGetBooking(t *testing.T) {
	svc := &fakeService{createResp: storedBooking()}
	r := setupRouter(svc)

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings/11111111-1111-1111-1111-111111111111", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown id returns 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings/22222222-2222-2222-2222-222222222222", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed id returns 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompletePaymentEndpoint(t *testing.T) {
	t.Run("Repeated completion maps to 409", func(t *testing.T) {
		svc := &fakeService{createResp: storedBooking(), paymentErr: booking.ErrPaymentCompleted}
		r := setupRouter(svc)

		w := postJSON(r, "/v1/bookings/11111111-1111-1111-1111-111111111111/payment", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	svc := &fakeService{createResp: storedBooking()}
	r := setupRouter(svc)

	w := postJSON(r, "/v1/bookings/11111111-1111-1111-1111-111111111111/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"101"}, resp.RoomNumbers)
}
