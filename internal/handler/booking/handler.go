package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/middleware"
	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/service/booking"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking records a booking. A duplicate (same email, service and
// date) comes back as 200 with accepted=false so the storefront can show the
// message without special error handling.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse("invalid booking ID"))
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, b)
}

// ListBookings returns the caller's bookings. The email query parameter must
// match the authenticated identity.
func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString(middleware.ContextUserEmail) {
		c.JSON(http.StatusForbidden, httputil.NewErrorResponse("forbidden access"))
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), email)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, bookings)
}
