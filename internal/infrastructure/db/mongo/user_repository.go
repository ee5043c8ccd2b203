package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

const (
	collectionUsers    = "users"
	collectionPartners = "partners"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	Email        string    `bson:"email"`
	TelContact   string    `bson:"tel_contact,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty"`
	Role         int       `bson:"role"`
	IsClient     bool      `bson:"is_client"`
	PartnerID    string    `bson:"partner_id,omitempty"`
	IsActive     bool      `bson:"is_active"`
	CreatedAt    time.Time `bson:"created_at"`
	PartnerDesc  *string   `bson:"partner_desc,omitempty"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		TelContact:   d.TelContact,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		IsClient:     d.IsClient,
		PartnerID:    d.PartnerID,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		TelContact:   u.TelContact,
		PasswordHash: u.PasswordHash,
		Role:         int(u.Role),
		IsClient:     u.IsClient,
		PartnerID:    u.PartnerID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

// buildUserPredicates translates the scope and the caller filters into an
// explicit predicate list. The scope predicate always comes first and is
// ANDed with everything else, so filters can only narrow the result set.
// The partner_desc filter is absent here: it matches the joined partner
// document and is applied after $lookup.
func buildUserPredicates(scope domain.Scope, f ports.UserFilter) []bson.M {
	preds := []bson.M{}

	if scope.PartnerID != "" {
		preds = append(preds, bson.M{"partner_id": scope.PartnerID})
	}
	if scope.SelfID != "" {
		preds = append(preds, bson.M{"_id": scope.SelfID})
	}

	if f.FirstName != "" {
		preds = append(preds, bson.M{"first_name": ciContains(f.FirstName)})
	}
	if f.LastName != "" {
		preds = append(preds, bson.M{"last_name": ciContains(f.LastName)})
	}
	if f.Email != "" {
		preds = append(preds, bson.M{"email": ciContains(f.Email)})
	}
	if f.TelContact != "" {
		preds = append(preds, bson.M{"tel_contact": ciContains(f.TelContact)})
	}
	if f.Role != nil {
		preds = append(preds, bson.M{"role": int(*f.Role)})
	}
	if f.IsClient != nil {
		preds = append(preds, bson.M{"is_client": *f.IsClient})
	}
	if !f.CreatedFrom.IsZero() {
		preds = append(preds, bson.M{"created_at": bson.M{"$gte": f.CreatedFrom}})
	}
	if !f.CreatedTo.IsZero() {
		preds = append(preds, bson.M{"created_at": bson.M{"$lte": f.CreatedTo}})
	}
	if f.IsActive != nil {
		preds = append(preds, bson.M{"is_active": *f.IsActive})
	}
	if f.PartnerID != "" {
		// ANDed with the scope's partner predicate: a caller passing a
		// partner outside its scope gets an empty set, never a wider one.
		preds = append(preds, bson.M{"partner_id": f.PartnerID})
	}

	return preds
}

// List runs the scoped, filtered user query with the partner description
// joined in and flattened. Ordering is created_at descending, always.
func (r *UserRepository) List(ctx context.Context, scope domain.Scope, filter ports.UserFilter) ([]domain.UserRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{}
	if preds := buildUserPredicates(scope, filter); len(preds) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$and": preds}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         collectionPartners,
			"localField":   "partner_id",
			"foreignField": "_id",
			"as":           "partner",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"partner_desc": bson.M{"$arrayElemAt": bson.A{"$partner.description", 0}},
		}}},
	)

	if filter.PartnerDesc != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"partner_desc": ciContains(filter.PartnerDesc),
		}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{"partner": 0, "password_hash": 0}}},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	rows := make([]domain.UserRow, len(docs))
	for i, d := range docs {
		rows[i] = domain.UserRow{User: d.toDomain(), PartnerDesc: d.PartnerDesc}
	}
	return rows, nil
}

// Create inserts a new user document. A duplicate email surfaces as
// domain.ErrUserExists via the unique index on email.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, fromDomainUser(u)); err != nil {
		return nil, classifyStoreError(err)
	}
	return r.FindByID(ctx, u.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var d userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u := d.toDomain()
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var d userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u := d.toDomain()
	return &u, nil
}

func (r *UserRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password_hash": passwordHash}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the user queries depend on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: optionsUniqueIndex()},
		{Keys: bson.D{{Key: "partner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
