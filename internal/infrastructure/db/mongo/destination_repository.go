package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelgo/travel-api/internal/core/domain"
)

const destinationCollection = "destinations"

// DestinationRepository persists catalog entries in MongoDB. The generated
// destination id is stored as the document _id.
type DestinationRepository struct {
	coll *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{coll: db.Collection(destinationCollection)}
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer cursor.Close(ctx)

	destinations := []domain.Destination{}
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id string) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("find destination: %w", err)
	}
	return &d, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("insert destination: %w", err)
	}
	return nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDestinationNotFound
	}
	return nil
}
