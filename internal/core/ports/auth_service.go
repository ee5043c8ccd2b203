package ports

import (
	"context"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// AuthService verifies credentials and mints session tokens.
type AuthService interface {
	// Login returns a signed session token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Activate consumes a single-use invite token and sets the initial
	// password for the invited account.
	Activate(ctx context.Context, token, password string) (*domain.User, error)
}
