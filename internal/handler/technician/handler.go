package technician

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/service/technician"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

type Handler struct {
	service *technician.Service
}

func NewHandler(service *technician.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateTechnician(c *gin.Context) {
	var req model.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse(err.Error()))
		return
	}

	t, err := h.service.CreateTechnician(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, t)
}

func (h *Handler) ListTechnicians(c *gin.Context) {
	technicians, err := h.service.ListTechnicians(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, technicians)
}

func (h *Handler) DeleteTechnician(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse("invalid technician ID"))
		return
	}

	if err := h.service.DeleteTechnician(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}
