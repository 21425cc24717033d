package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/service/payment"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

type Handler struct {
	service *payment.Service
}

func NewHandler(service *payment.Service) *Handler {
	return &Handler{service: service}
}

// CreateIntent obtains a gateway client secret for the given price.
func (h *Handler) CreateIntent(c *gin.Context) {
	var req model.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse(err.Error()))
		return
	}

	clientSecret, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.CreateIntentResponse{ClientSecret: clientSecret})
}

// RecordPayment persists a confirmed payment and marks its booking paid.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req model.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, p)
}
