package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

type bookingRepository struct {
	BaseRepository
}

func NewBookingRepository(base BaseRepository) repository.BookingRepository {
	return &bookingRepository{base}
}

// Create inserts the booking. Uniqueness of (email, service_name,
// booking_date) is enforced by the table constraint, so concurrent identical
// requests cannot both win: the loser sees zero returned rows and the call
// reports accepted=false.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) (bool, error) {
	query := `
		INSERT INTO bookings (id, email, service_name, booking_date, phone, price, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (email, service_name, booking_date) DO NOTHING
		RETURNING id
	`

	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()

	var id uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		booking.ID,
		booking.Email,
		booking.ServiceName,
		booking.Date,
		booking.Phone,
		booking.Price,
		booking.CreatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create booking: %w", err)
	}

	return true, nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("booking", err)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) ListByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	query := `SELECT * FROM bookings WHERE email = $1 ORDER BY created_at DESC`

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, email); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// MarkPaid is idempotent: repeating the update with the same transaction id
// leaves the row in the same state.
func (r *bookingRepository) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error {
	query := `
		UPDATE bookings
		SET paid = TRUE, transaction_id = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, transactionID, id)
	if err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("booking", nil)
	}

	return nil
}
