package ports

import (
	"context"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// ListUsersInput carries the requesting principal and the parsed filters.
type ListUsersInput struct {
	Principal domain.Principal
	Filter    UserFilter
}

// CreateUserInput carries everything needed to invite a new user.
type CreateUserInput struct {
	Principal domain.Principal
	Email     string
	FirstName string
	LastName  string
	Telephone string
	IsClient  bool
	Role      domain.Role
	PartnerID string // empty = default to the principal's partner
}

// UserService defines the administrative use cases over users.
type UserService interface {
	ListUsers(ctx context.Context, in ListUsersInput) ([]domain.UserRow, error)
	// CreateUser creates an invited account and queues the invite mail.
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
}
