package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/response"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		Number:    body.Number,
		Category:  room.Category(body.Category),
		Type:      room.Type(body.Type),
		Price:     body.Price,
		Capacity:  body.Capacity,
		Amenities: body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(r))
}

func (h *Handler) List(c *gin.Context) {
	var q ListRoomsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	rooms, total, err := h.service.List(c.Request.Context(), room.Filter{
		Category:      room.Category(q.Category),
		Type:          room.Type(q.Type),
		AvailableOnly: q.AvailableOnly,
		Page:          q.Page,
		PageSize:      q.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := room.UpdateRequest{
		Price:     body.Price,
		Capacity:  body.Capacity,
		Amenities: body.Amenities,
	}
	if body.Category != nil {
		cat := room.Category(*body.Category)
		req.Category = &cat
	}

	r, err := h.service.Update(c.Request.Context(), c.Param("number"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Availability(c *gin.Context) {
	var q AvailabilityRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	query := room.AvailabilityQuery{
		Category: room.Category(q.Category),
		Type:     room.Type(q.Type),
	}
	if q.CheckIn != "" {
		t, err := time.Parse(dateLayout, q.CheckIn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be a YYYY-MM-DD date"})
			return
		}
		query.CheckIn = t
	}
	if q.CheckOut != "" {
		t, err := time.Parse(dateLayout, q.CheckOut)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be a YYYY-MM-DD date"})
			return
		}
		query.CheckOut = t
	}

	rooms, mode, err := h.service.Availability(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		Mode:  string(mode),
		Rooms: items,
	})
}
