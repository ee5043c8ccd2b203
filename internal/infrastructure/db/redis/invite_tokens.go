package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// InviteTokenStore keeps single-use invite tokens in Redis.
// Key format: invite:<token> → user id, expiring after the invite TTL.
type InviteTokenStore struct {
	client *redis.Client
}

// NewInviteTokenStore creates an InviteTokenStore wrapping the given client.
func NewInviteTokenStore(client *redis.Client) *InviteTokenStore {
	return &InviteTokenStore{client: client}
}

// Put stores the token for userID with the given TTL.
func (s *InviteTokenStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("store invite token: %w", err)
	}
	return nil
}

// Consume resolves the token to its user id and deletes it atomically.
// Unknown or expired tokens yield domain.ErrInviteTokenInvalid.
func (s *InviteTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInviteTokenInvalid
		}
		return "", fmt.Errorf("consume invite token: %w", err)
	}
	return userID, nil
}

func (s *InviteTokenStore) key(token string) string {
	return "invite:" + token
}
