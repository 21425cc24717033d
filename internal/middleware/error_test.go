package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
	"github.com/cctvshop/storefront-api/pkg/httputil"
)

func errorHandlerEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/boom", handler)
	return r
}

func TestErrorHandlerMapsAttachedError(t *testing.T) {
	r := errorHandlerEngine(func(c *gin.Context) {
		c.Error(apperrors.NotFound("booking", nil))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestErrorHandlerDefaultsToInternalError(t *testing.T) {
	r := errorHandlerEngine(func(c *gin.Context) {
		c.Error(assert.AnError)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// A handler that responds through httputil both writes the body and attaches
// the error; the middleware must not write a second body on top of it.
func TestErrorHandlerLeavesWrittenResponseAlone(t *testing.T) {
	r := errorHandlerEngine(func(c *gin.Context) {
		httputil.RespondWithError(c, apperrors.Forbidden("forbidden access"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body httputil.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "forbidden access", body.Message)
}
