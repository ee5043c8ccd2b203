package ports

import (
	"context"
	"time"
)

// InviteJob is a queued invitation mail for a newly created account.
type InviteJob struct {
	Email     string
	FirstName string
	Token     string
}

// Mailer delivers invitation mails.
type Mailer interface {
	SendInvite(ctx context.Context, job InviteJob) error
}

// InviteDispatcher enqueues invite jobs for asynchronous delivery.
type InviteDispatcher interface {
	Enqueue(job InviteJob)
}

// InviteTokenStore persists single-use invite tokens with a TTL.
type InviteTokenStore interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume resolves the token to its user id and invalidates it.
	// Returns domain.ErrInviteTokenInvalid for unknown or expired tokens.
	Consume(ctx context.Context, token string) (string, error)
}
