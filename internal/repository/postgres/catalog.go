package postgres

import (
	"context"
	"fmt"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
)

type catalogRepository struct {
	BaseRepository
}

func NewCatalogRepository(base BaseRepository) repository.CatalogRepository {
	return &catalogRepository{base}
}

func (r *catalogRepository) ListServices(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT * FROM services ORDER BY service_name`

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return services, nil
}

func (r *catalogRepository) ListServiceNames(ctx context.Context) ([]*model.ServiceName, error) {
	query := `SELECT service_name FROM services ORDER BY service_name`

	var names []*model.ServiceName
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list service names: %w", err)
	}

	return names, nil
}
