package ports

import (
	"context"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// ListTicketsInput carries the requesting principal and the parsed filters.
type ListTicketsInput struct {
	Principal domain.Principal
	Filter    TicketFilter
}

// CreateTicketInput carries the data for opening a new ticket. The creator
// and, for restricted principals, the partner are taken from the principal.
type CreateTicketInput struct {
	Principal   domain.Principal
	Title       string
	Description string
	CategoryID  string
	TypeID      string
	ModuleID    string
	StatusID    string
	PriorityID  string
	PartnerID   string
	ProjectID   string
	IsPrivate   bool
}

// TicketService defines the ticket use cases.
type TicketService interface {
	ListTickets(ctx context.Context, in ListTicketsInput) ([]domain.Ticket, error)
	CreateTicket(ctx context.Context, in CreateTicketInput) (*domain.Ticket, error)
}
