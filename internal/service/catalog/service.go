package catalog

import (
	"context"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
)

// Service reads the service catalog. Catalog data is managed out of band and
// read-only here.
type Service struct {
	repo repository.CatalogRepository
}

func NewService(repo repository.CatalogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) ListServiceNames(ctx context.Context) ([]*model.ServiceName, error) {
	return s.repo.ListServiceNames(ctx)
}
