package ports

import (
	"context"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// PartnerRepository defines persistence operations for partners.
type PartnerRepository interface {
	// List returns all partners ordered by description.
	List(ctx context.Context) ([]domain.Partner, error)
	FindByID(ctx context.Context, id string) (*domain.Partner, error)
}

// PartnerService exposes the partner option list used by admin forms.
type PartnerService interface {
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}
