package technician

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/repository"
)

type Service struct {
	repo repository.TechnicianRepository
}

func NewService(repo repository.TechnicianRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateTechnician(ctx context.Context, req *model.CreateTechnicianRequest) (*model.Technician, error) {
	technician := &model.Technician{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(ctx, technician); err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}

	return technician, nil
}

func (s *Service) ListTechnicians(ctx context.Context) ([]*model.Technician, error) {
	return s.repo.List(ctx)
}

func (s *Service) DeleteTechnician(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
