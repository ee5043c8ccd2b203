package ports

import (
	"context"
	"time"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// TicketFilter carries the caller-supplied predicates for the ticket
// listing. All fields are optional and AND-combined after visibility
// scoping. Date fields match the whole calendar day they fall on.
type TicketFilter struct {
	ExternalID  *int
	Title       string // case-insensitive substring
	Description string // case-insensitive substring
	CategoryID  string
	TypeID      string
	ModuleID    string
	StatusID    string
	PriorityID  string
	PartnerID   string
	ProjectID   string
	CreatedBy   string
	IsClosed    *bool
	IsPrivate   *bool
	CreatedOn   time.Time
	PlannedEnd  time.Time
	ActualEnd   time.Time
}

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	// List returns the tickets visible under scope that match filter,
	// ordered by created_at descending.
	List(ctx context.Context, scope domain.Scope, filter TicketFilter) ([]domain.Ticket, error)
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	// NextExternalID returns the next human-facing sequential id.
	NextExternalID(ctx context.Context) (int, error)
}
