package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
)

type Service struct {
	repo repository.BookingRepository
}

func NewService(repo repository.BookingRepository) *Service {
	return &Service{repo: repo}
}

// CreateBooking records a booking unless the customer already holds one for
// the same service on the same date. A duplicate is a business-rule
// rejection: the result carries accepted=false and a message naming the
// conflicting date, not an error.
func (s *Service) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingResult, error) {
	booking := &model.Booking{
		Email:       req.Email,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Phone:       req.Phone,
		Price:       req.Price,
	}

	accepted, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if !accepted {
		return &model.BookingResult{
			Accepted: false,
			Message:  fmt.Sprintf("You already have a booking on %s", req.Date),
		}, nil
	}

	return &model.BookingResult{
		Accepted: true,
		ID:       &booking.ID,
	}, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context, email string) ([]*model.Booking, error) {
	return s.repo.ListByEmail(ctx, email)
}

// MarkPaid sets paid=true and attaches the transaction id. Safe to repeat:
// the update is idempotent.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error {
	return s.repo.MarkPaid(ctx, id, transactionID)
}
