package ports

import (
	"context"
	"time"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// UserFilter carries the caller-supplied predicates for the user listing.
// Every field is optional; repositories combine the present ones with
// logical AND, after the visibility scope has been applied. String fields
// are case-insensitive substring matches unless noted.
type UserFilter struct {
	FirstName   string
	LastName    string
	Email       string
	TelContact  string
	PartnerDesc string // matched against the joined partner's description
	Role        *domain.Role
	IsClient    *bool
	CreatedFrom time.Time // inclusive lower bound on created_at
	CreatedTo   time.Time // inclusive upper bound on created_at
	IsActive    *bool
	PartnerID   string // exact; ANDed with the scope's partner predicate
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// List returns the users visible under scope that match filter,
	// ordered by created_at descending, each row carrying the flattened
	// partner description.
	List(ctx context.Context, scope domain.Scope, filter UserFilter) ([]domain.UserRow, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetPassword stores a new password hash for the given user.
	SetPassword(ctx context.Context, id, passwordHash string) error
}
