package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

type stubTicketRepo struct {
	tickets   []domain.Ticket
	nextID    int
	lastScope domain.Scope
	listErr   error
	seqErr    error
}

func (r *stubTicketRepo) List(_ context.Context, scope domain.Scope, f ports.TicketFilter) ([]domain.Ticket, error) {
	r.lastScope = scope
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []domain.Ticket
	for _, t := range r.tickets {
		if scope.PartnerID != "" && t.PartnerID != scope.PartnerID {
			continue
		}
		if scope.SelfID != "" && t.CreatedBy != scope.SelfID {
			continue
		}
		if f.ExternalID != nil && t.ExternalID != *f.ExternalID {
			continue
		}
		if f.StatusID != "" && t.StatusID != f.StatusID {
			continue
		}
		if f.IsClosed != nil && t.IsClosed != *f.IsClosed {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubTicketRepo) Create(_ context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	clone := *t
	r.tickets = append(r.tickets, clone)
	out := clone
	return &out, nil
}

func (r *stubTicketRepo) NextExternalID(_ context.Context) (int, error) {
	if r.seqErr != nil {
		return 0, r.seqErr
	}
	r.nextID++
	return r.nextID, nil
}

func seedTickets(repo *stubTicketRepo) {
	base := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	repo.tickets = []domain.Ticket{
		{ID: "T1", ExternalID: 1, Title: "Printer down", PartnerID: "P1", CreatedBy: "U1", StatusID: "open", CreatedAt: base},
		{ID: "T2", ExternalID: 2, Title: "Login broken", PartnerID: "P1", CreatedBy: "U2", StatusID: "open", CreatedAt: base.Add(time.Hour)},
		{ID: "T3", ExternalID: 3, Title: "Billing question", PartnerID: "P2", CreatedBy: "U3", StatusID: "closed", IsClosed: true, CreatedAt: base.Add(2 * time.Hour)},
	}
	repo.nextID = 3
}

func TestTicketService_List_PartnerScoped(t *testing.T) {
	repo := &stubTicketRepo{}
	seedTickets(repo)
	svc := NewTicketService(repo, discardLogger)

	p := domain.Principal{ID: "U1", Role: domain.RoleManager, IsClient: true, PartnerID: "P1"}
	tickets, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{Principal: p})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets in P1, got %d", len(tickets))
	}
	if tickets[0].ID != "T2" {
		t.Errorf("expected newest first, got %s", tickets[0].ID)
	}
}

func TestTicketService_List_PartnerlessPrincipalSeesOwnTicketsOnly(t *testing.T) {
	repo := &stubTicketRepo{}
	seedTickets(repo)
	repo.tickets = append(repo.tickets, domain.Ticket{
		ID: "T4", ExternalID: 4, Title: "Own issue", CreatedBy: "L1", CreatedAt: time.Now(),
	})
	svc := NewTicketService(repo, discardLogger)

	p := domain.Principal{ID: "L1", Role: domain.RoleTechnician, IsClient: true}
	tickets, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{Principal: p})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 1 || tickets[0].CreatedBy != "L1" {
		t.Fatalf("expected only the principal's own tickets, got %d", len(tickets))
	}
}

func TestTicketService_List_AdminUnrestricted(t *testing.T) {
	repo := &stubTicketRepo{}
	seedTickets(repo)
	svc := NewTicketService(repo, discardLogger)

	admin := domain.Principal{ID: "U9", Role: domain.RoleAdmin}
	tickets, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{Principal: admin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastScope != (domain.Scope{}) {
		t.Errorf("expected empty scope, got %+v", repo.lastScope)
	}
	if len(tickets) != 3 {
		t.Fatalf("expected all 3 tickets, got %d", len(tickets))
	}
}

func TestTicketService_Create_AssignsSequentialExternalID(t *testing.T) {
	repo := &stubTicketRepo{}
	seedTickets(repo)
	svc := NewTicketService(repo, discardLogger)

	admin := domain.Principal{ID: "U9", Role: domain.RoleAdmin}
	ticket, err := svc.CreateTicket(context.Background(), ports.CreateTicketInput{
		Principal:   admin,
		Title:       "New issue",
		Description: "Something broke",
		CategoryID:  "cat1",
		TypeID:      "type1",
		StatusID:    "open",
		PriorityID:  "high",
		PartnerID:   "P2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ticket.ExternalID != 4 {
		t.Errorf("expected external id 4, got %d", ticket.ExternalID)
	}
	if ticket.CreatedBy != "U9" {
		t.Errorf("creator must be the principal, got %q", ticket.CreatedBy)
	}
	if ticket.PartnerID != "P2" {
		t.Errorf("unrestricted admin may target any partner, got %q", ticket.PartnerID)
	}
	if ticket.IsClosed {
		t.Error("new tickets start open")
	}
}

func TestTicketService_Create_RestrictedPrincipalForcedToOwnPartner(t *testing.T) {
	repo := &stubTicketRepo{}
	seedTickets(repo)
	svc := NewTicketService(repo, discardLogger)

	p := domain.Principal{ID: "U1", Role: domain.RoleManager, IsClient: true, PartnerID: "P1"}
	ticket, err := svc.CreateTicket(context.Background(), ports.CreateTicketInput{
		Principal:   p,
		Title:       "Sneaky",
		Description: "Trying another partner",
		CategoryID:  "cat1",
		TypeID:      "type1",
		StatusID:    "open",
		PriorityID:  "low",
		PartnerID:   "P2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.PartnerID != "P1" {
		t.Errorf("restricted principal must create inside its own partner, got %q", ticket.PartnerID)
	}
}

func TestTicketService_Create_SequenceError(t *testing.T) {
	repo := &stubTicketRepo{seqErr: errors.New("counter unavailable")}
	svc := NewTicketService(repo, discardLogger)

	_, err := svc.CreateTicket(context.Background(), ports.CreateTicketInput{
		Principal: domain.Principal{ID: "U9", Role: domain.RoleAdmin},
		Title:     "x",
	})
	if err == nil {
		t.Fatal("expected error when the sequence fails, got nil")
	}
	if len(repo.tickets) != 0 {
		t.Error("no ticket may be stored when the sequence fails")
	}
}
