package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

type technicianRepository struct {
	BaseRepository
}

func NewTechnicianRepository(base BaseRepository) repository.TechnicianRepository {
	return &technicianRepository{base}
}

func (r *technicianRepository) Create(ctx context.Context, technician *model.Technician) error {
	query := `
		INSERT INTO technicians (id, name, specialty, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	technician.ID = uuid.New()
	technician.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		technician.ID,
		technician.Name,
		technician.Specialty,
		technician.Phone,
		technician.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}

	return nil
}

func (r *technicianRepository) List(ctx context.Context) ([]*model.Technician, error) {
	query := `SELECT * FROM technicians ORDER BY name`

	var technicians []*model.Technician
	if err := r.db.SelectContext(ctx, &technicians, query); err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	return technicians, nil
}

func (r *technicianRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM technicians WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("technician", nil)
	}

	return nil
}
