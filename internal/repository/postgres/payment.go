package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

type paymentRepository struct {
	BaseRepository
}

func NewPaymentRepository(base BaseRepository) repository.PaymentRepository {
	return &paymentRepository{base}
}

// Record inserts the payment row and marks the referenced booking paid in one
// transaction. A failed booking update rolls the payment row back, so the two
// writes cannot diverge.
func (r *paymentRepository) Record(ctx context.Context, payment *model.Payment) error {
	insertPayment := `
		INSERT INTO payments (id, booking_id, email, price, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	markPaid := `
		UPDATE bookings
		SET paid = TRUE, transaction_id = $1
		WHERE id = $2
	`

	payment.ID = uuid.New()
	payment.CreatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, insertPayment,
			payment.ID,
			payment.BookingID,
			payment.Email,
			payment.Price,
			payment.TransactionID,
			payment.CreatedAt,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
				return apperrors.NotFound("booking", err)
			}
			return fmt.Errorf("failed to record payment: %w", err)
		}

		result, err := tx.ExecContext(ctx, markPaid, payment.TransactionID, payment.BookingID)
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
	})
}
