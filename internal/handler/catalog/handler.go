package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/cctvshop/storefront-api/internal/service/catalog"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, services)
}

func (h *Handler) ListServiceNames(c *gin.Context) {
	names, err := h.service.ListServiceNames(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, names)
}
