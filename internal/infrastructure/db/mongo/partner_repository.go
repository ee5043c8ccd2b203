package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

type PartnerRepository struct {
	col *mongo.Collection
}

func NewPartnerRepository(db *mongo.Database) *PartnerRepository {
	return &PartnerRepository{col: db.Collection(collectionPartners)}
}

type partnerDoc struct {
	ID          string    `bson:"_id"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (r *PartnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "description", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []partnerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	partners := make([]domain.Partner, len(docs))
	for i, d := range docs {
		partners[i] = domain.Partner{ID: d.ID, Description: d.Description, CreatedAt: d.CreatedAt}
	}
	return partners, nil
}

func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*domain.Partner, error) {
	var d partnerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, err
	}
	return &domain.Partner{ID: d.ID, Description: d.Description, CreatedAt: d.CreatedAt}, nil
}
