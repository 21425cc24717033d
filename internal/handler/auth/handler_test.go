package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cctvshop/storefront-api/internal/model"
	authservice "github.com/cctvshop/storefront-api/internal/service/auth"
	"github.com/cctvshop/storefront-api/pkg/auth"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("user", nil)
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*model.User, error) { return nil, nil }

func (f *fakeUserRepo) PromoteToAdmin(_ context.Context, _ uuid.UUID) error { return nil }

func newTestEngine(emails ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &fakeUserRepo{byEmail: make(map[string]*model.User)}
	for _, email := range emails {
		repo.byEmail[email] = &model.User{Email: email, Role: model.RoleCustomer}
	}

	svc := authservice.NewService(repo, auth.NewJWTService("test-secret", time.Hour))
	h := NewHandler(svc)

	r := gin.New()
	r.GET("/jwt", h.IssueToken)
	return r
}

func getJWT(r *gin.Engine, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/jwt?email="+email, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIssueTokenKnownEmail(t *testing.T) {
	r := newTestEngine("a@x.com")

	w := getJWT(r, "a@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	r := newTestEngine()

	w := getJWT(r, "unknown@x.com")
	require.Equal(t, http.StatusForbidden, w.Code)

	var resp model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.AccessToken)
}

func TestIssueTokenMissingEmail(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/jwt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
