package payment

import (
	"context"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
	"github.com/cctvshop/storefront-api/pkg/payment"
)

// Service bridges the storefront to the payment gateway and reconciles
// completed payments into bookings.
type Service struct {
	gateway payment.Gateway
	repo    repository.PaymentRepository
}

func NewService(gateway payment.Gateway, repo repository.PaymentRepository) *Service {
	return &Service{
		gateway: gateway,
		repo:    repo,
	}
}

// CreateIntent requests a card payment intent for price and returns the
// client secret needed to complete the charge client-side.
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", apperrors.BadRequest("price must be positive", nil)
	}

	return s.gateway.CreateIntent(ctx, price)
}

// RecordPayment persists the payment and marks the referenced booking paid.
// Both writes happen in one transaction at the repository level.
func (s *Service) RecordPayment(ctx context.Context, req *model.RecordPaymentRequest) (*model.Payment, error) {
	p := &model.Payment{
		BookingID:     req.BookingID,
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
	}

	if err := s.repo.Record(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
