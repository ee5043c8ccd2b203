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

// TicketService implements the ticket use cases with the same visibility
// scoping as the user listing.
type TicketService struct {
	repo   ports.TicketRepository
	logger zerolog.Logger
}

func NewTicketService(repo ports.TicketRepository, logger zerolog.Logger) *TicketService {
	return &TicketService{repo: repo, logger: logger}
}

// ListTickets returns the tickets visible to the principal, newest first.
func (s *TicketService) ListTickets(ctx context.Context, in ports.ListTicketsInput) ([]domain.Ticket, error) {
	tickets, err := s.repo.List(ctx, in.Principal.Scope(), in.Filter)
	if err != nil {
		s.logger.Error().Err(err).Str("principal", in.Principal.ID).Msg("ticket listing failed")
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// CreateTicket opens a new ticket on behalf of the principal. Restricted
// principals always create inside their own partner.
func (s *TicketService) CreateTicket(ctx context.Context, in ports.CreateTicketInput) (*domain.Ticket, error) {
	p := in.Principal

	partnerID := in.PartnerID
	if !p.Unrestricted() {
		partnerID = p.PartnerID
	}

	externalID, err := s.repo.NextExternalID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		ExternalID:  externalID,
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		TypeID:      in.TypeID,
		ModuleID:    in.ModuleID,
		StatusID:    in.StatusID,
		PriorityID:  in.PriorityID,
		PartnerID:   partnerID,
		ProjectID:   in.ProjectID,
		CreatedBy:   p.ID,
		IsPrivate:   in.IsPrivate,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.logger.Info().
		Str("ticket_id", created.ID).
		Int("external_id", created.ExternalID).
		Str("partner_id", created.PartnerID).
		Msg("ticket created")

	return created, nil
}
