package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cctvshop/storefront-api/internal/model"
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

func newTestService(emails ...string) *Service {
	repo := &fakeUserRepo{byEmail: make(map[string]*model.User)}
	for _, email := range emails {
		repo.byEmail[email] = &model.User{Email: email, Role: model.RoleCustomer}
	}
	return NewService(repo, auth.NewJWTService("test-secret", time.Hour))
}

func TestIssueTokenForKnownEmail(t *testing.T) {
	svc := newTestService("a@x.com")

	token, err := svc.IssueToken(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssueTokenUnknownEmailForbidden(t *testing.T) {
	svc := newTestService()

	token, err := svc.IssueToken(context.Background(), "unknown@x.com")
	assert.Empty(t, token)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestVerifyGarbageToken(t *testing.T) {
	svc := newTestService()

	_, err := svc.VerifyToken("garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
