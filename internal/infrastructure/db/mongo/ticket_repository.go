package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

const (
	collectionTickets  = "tickets"
	collectionCounters = "counters"
)

type TicketRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) *TicketRepository {
	return &TicketRepository{
		col:      db.Collection(collectionTickets),
		counters: db.Collection(collectionCounters),
	}
}

type ticketDoc struct {
	ID             string     `bson:"_id"`
	ExternalID     int        `bson:"external_id"`
	Title          string     `bson:"title"`
	Description    string     `bson:"description,omitempty"`
	CategoryID     string     `bson:"category_id,omitempty"`
	TypeID         string     `bson:"type_id,omitempty"`
	ModuleID       string     `bson:"module_id,omitempty"`
	StatusID       string     `bson:"status_id,omitempty"`
	PriorityID     string     `bson:"priority_id,omitempty"`
	PartnerID      string     `bson:"partner_id,omitempty"`
	ProjectID      string     `bson:"project_id,omitempty"`
	CreatedBy      string     `bson:"created_by"`
	IsClosed       bool       `bson:"is_closed"`
	IsPrivate      bool       `bson:"is_private"`
	CreatedAt      time.Time  `bson:"created_at"`
	PlannedEndDate *time.Time `bson:"planned_end_date,omitempty"`
	ActualEndDate  *time.Time `bson:"actual_end_date,omitempty"`
}

func (d ticketDoc) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:             d.ID,
		ExternalID:     d.ExternalID,
		Title:          d.Title,
		Description:    d.Description,
		CategoryID:     d.CategoryID,
		TypeID:         d.TypeID,
		ModuleID:       d.ModuleID,
		StatusID:       d.StatusID,
		PriorityID:     d.PriorityID,
		PartnerID:      d.PartnerID,
		ProjectID:      d.ProjectID,
		CreatedBy:      d.CreatedBy,
		IsClosed:       d.IsClosed,
		IsPrivate:      d.IsPrivate,
		CreatedAt:      d.CreatedAt,
		PlannedEndDate: d.PlannedEndDate,
		ActualEndDate:  d.ActualEndDate,
	}
}

func fromDomainTicket(t *domain.Ticket) ticketDoc {
	return ticketDoc{
		ID:             t.ID,
		ExternalID:     t.ExternalID,
		Title:          t.Title,
		Description:    t.Description,
		CategoryID:     t.CategoryID,
		TypeID:         t.TypeID,
		ModuleID:       t.ModuleID,
		StatusID:       t.StatusID,
		PriorityID:     t.PriorityID,
		PartnerID:      t.PartnerID,
		ProjectID:      t.ProjectID,
		CreatedBy:      t.CreatedBy,
		IsClosed:       t.IsClosed,
		IsPrivate:      t.IsPrivate,
		CreatedAt:      t.CreatedAt,
		PlannedEndDate: t.PlannedEndDate,
		ActualEndDate:  t.ActualEndDate,
	}
}

// dayRange builds an inclusive-start, exclusive-end predicate covering the
// calendar day t falls on (the admin UI sends plain dates).
func dayRange(t time.Time) bson.M {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
}

// buildTicketPredicates mirrors buildUserPredicates for the ticket
// collection: scope first, caller filters after, all AND-combined.
func buildTicketPredicates(scope domain.Scope, f ports.TicketFilter) []bson.M {
	preds := []bson.M{}

	if scope.PartnerID != "" {
		preds = append(preds, bson.M{"partner_id": scope.PartnerID})
	}
	if scope.SelfID != "" {
		preds = append(preds, bson.M{"created_by": scope.SelfID})
	}

	if f.ExternalID != nil {
		preds = append(preds, bson.M{"external_id": *f.ExternalID})
	}
	if f.Title != "" {
		preds = append(preds, bson.M{"title": ciContains(f.Title)})
	}
	if f.Description != "" {
		preds = append(preds, bson.M{"description": ciContains(f.Description)})
	}

	exact := []struct {
		field string
		value string
	}{
		{"category_id", f.CategoryID},
		{"type_id", f.TypeID},
		{"module_id", f.ModuleID},
		{"status_id", f.StatusID},
		{"priority_id", f.PriorityID},
		{"partner_id", f.PartnerID},
		{"project_id", f.ProjectID},
		{"created_by", f.CreatedBy},
	}
	for _, e := range exact {
		if e.value != "" {
			preds = append(preds, bson.M{e.field: e.value})
		}
	}

	if f.IsClosed != nil {
		preds = append(preds, bson.M{"is_closed": *f.IsClosed})
	}
	if f.IsPrivate != nil {
		preds = append(preds, bson.M{"is_private": *f.IsPrivate})
	}
	if !f.CreatedOn.IsZero() {
		preds = append(preds, bson.M{"created_at": dayRange(f.CreatedOn)})
	}
	if !f.PlannedEnd.IsZero() {
		preds = append(preds, bson.M{"planned_end_date": dayRange(f.PlannedEnd)})
	}
	if !f.ActualEnd.IsZero() {
		preds = append(preds, bson.M{"actual_end_date": dayRange(f.ActualEnd)})
	}

	return preds
}

// List returns the tickets visible under scope matching filter, newest first.
func (r *TicketRepository) List(ctx context.Context, scope domain.Scope, filter ports.TicketFilter) ([]domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if preds := buildTicketPredicates(scope, filter); len(preds) > 0 {
		query["$and"] = preds
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []ticketDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, len(docs))
	for i, d := range docs {
		tickets[i] = d.toDomain()
	}
	return tickets, nil
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, fromDomainTicket(t)); err != nil {
		return nil, classifyStoreError(err)
	}

	var d ticketDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": t.ID}).Decode(&d); err != nil {
		return nil, err
	}
	created := d.toDomain()
	return &created, nil
}

// NextExternalID atomically increments the ticket sequence counter.
func (r *TicketRepository) NextExternalID(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "ticket_external_id"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, err
	}
	return out.Seq, nil
}

// EnsureIndexes creates the indexes the ticket queries depend on.
func (r *TicketRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "external_id", Value: 1}}},
		{Keys: bson.D{{Key: "partner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
