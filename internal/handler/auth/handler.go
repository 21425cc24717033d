package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/service/auth"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

// IssueToken answers GET /jwt. An email without an account gets 403 with an
// empty accessToken body, matching what the storefront frontend expects.
func (h *Handler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse("email is required"))
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), email)
	if err != nil {
		if apperrors.IsForbidden(err) {
			c.JSON(http.StatusForbidden, model.TokenResponse{AccessToken: ""})
			return
		}
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: token})
}
