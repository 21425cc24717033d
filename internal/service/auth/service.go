package auth

import (
	"context"
	"fmt"

	"github.com/cctvshop/storefront-api/internal/repository"
	"github.com/cctvshop/storefront-api/pkg/auth"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

// Service issues and verifies access tokens. Tokens are only issued for
// emails that already have a user record; there is no revocation, expiry is
// the sole invalidation mechanism.
type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

// IssueToken returns a signed access token for email, or Forbidden when no
// account exists for it.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.Forbidden("no account for email")
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.jwtSvc.GenerateAccessToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// VerifyToken validates signature and expiry and returns the identity claims.
func (s *Service) VerifyToken(token string) (*auth.Claims, error) {
	return s.jwtSvc.ValidateToken(token)
}
