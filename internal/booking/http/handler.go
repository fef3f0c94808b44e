package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oakstay/hotel-booking-backend/internal/booking"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/request"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/response"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	checkIn, err := time.Parse(DateLayout, body.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be a YYYY-MM-DD date"})
		return
	}
	checkOut, err := time.Parse(DateLayout, body.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be a YYYY-MM-DD date"})
		return
	}

	selections := make([]booking.RoomSelection, len(body.Rooms))
	for i, sel := range body.Rooms {
		selections[i] = booking.RoomSelection{
			RoomNumber: sel.RoomNumber,
			Price:      sel.Price,
			Category:   room.Category(sel.Category),
		}
	}

	req := booking.CreateRequest{
		Guest: booking.GuestInfo{
			Name:    body.Guest.Name,
			Phone:   body.Guest.Phone,
			Email:   body.Guest.Email,
			Address: body.Guest.Address,
		},
		RoomType:        room.Type(body.RoomType),
		Selections:      selections,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		PaymentMethod:   body.PaymentMethod,
		SpecialRequests: body.SpecialRequests,
		ProofRef:        body.ProofRef,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var q ListBookingsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		Status:        booking.Status(q.Status),
		PaymentStatus: booking.PaymentStatus(q.PaymentStatus),
		Page:          q.Page,
		PageSize:      q.PageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	id := params.ID

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) CompletePayment(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	id := params.ID

	b, err := h.service.CompletePayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Checkout(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	id := params.ID

	numbers, err := h.service.Checkout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{
		BookingID:   id,
		RoomNumbers: numbers,
	})
}
