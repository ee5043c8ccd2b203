package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

const defaultInviteTTL = 72 * time.Hour

// UserService implements the administrative user use cases. Visibility
// scoping happens here: the repository only ever sees an already-derived
// scope, so no combination of caller filters can widen it.
type UserService struct {
	repo      ports.UserRepository
	partners  ports.PartnerRepository
	tokens    ports.InviteTokenStore
	invites   ports.InviteDispatcher
	inviteTTL time.Duration
	logger    zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	partners ports.PartnerRepository,
	tokens ports.InviteTokenStore,
	invites ports.InviteDispatcher,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:      repo,
		partners:  partners,
		tokens:    tokens,
		invites:   invites,
		inviteTTL: defaultInviteTTL,
		logger:    logger,
	}
}

// ListUsers returns the users visible to the principal, newest first,
// with the partner description flattened onto each row.
func (s *UserService) ListUsers(ctx context.Context, in ports.ListUsersInput) ([]domain.UserRow, error) {
	rows, err := s.repo.List(ctx, in.Principal.Scope(), in.Filter)
	if err != nil {
		s.logger.Error().Err(err).Str("principal", in.Principal.ID).Msg("user listing failed")
		return nil, fmt.Errorf("list users: %w", err)
	}
	if rows == nil {
		rows = []domain.UserRow{}
	}
	return rows, nil
}

// CreateUser creates an invited account. Restricted callers may only
// create users inside their own partner; the new user starts active and
// receives a single-use invite token by mail.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	p := in.Principal

	partnerID := in.PartnerID
	if !p.Unrestricted() && partnerID != p.PartnerID {
		return nil, domain.ErrForbidden
	}
	if partnerID == "" {
		partnerID = p.PartnerID
	}

	if !in.Role.Valid() {
		return nil, domain.ErrInvalidReference
	}
	if partnerID != "" {
		if _, err := s.partners.FindByID(ctx, partnerID); err != nil {
			if err == domain.ErrPartnerNotFound {
				return nil, domain.ErrInvalidReference
			}
			return nil, fmt.Errorf("create user: verify partner: %w", err)
		}
	}

	user := &domain.User{
		ID:         uuid.NewString(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		TelContact: in.Telephone,
		Role:       in.Role,
		IsClient:   in.IsClient,
		PartnerID:  partnerID,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token := uuid.NewString()
	if err := s.tokens.Put(ctx, token, created.ID, s.inviteTTL); err != nil {
		// The account exists; a broken invite can be re-sent later.
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("failed to store invite token")
	} else {
		s.invites.Enqueue(ports.InviteJob{
			Email:     created.Email,
			FirstName: created.FirstName,
			Token:     token,
		})
	}

	s.logger.Info().
		Str("user_id", created.ID).
		Str("partner_id", created.PartnerID).
		Int("role", int(created.Role)).
		Msg("user created")

	return created, nil
}
