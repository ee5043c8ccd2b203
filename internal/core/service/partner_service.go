package service

import (
	"context"
	"fmt"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

// PartnerService serves the partner option list used by admin forms.
type PartnerService struct {
	repo ports.PartnerRepository
}

func NewPartnerService(repo ports.PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

func (s *PartnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	if partners == nil {
		partners = []domain.Partner{}
	}
	return partners, nil
}
