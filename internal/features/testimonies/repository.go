package testimonies

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("testimonies")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, testimony *Testimony) error {
	testimony.CreatedAt = FlexTime(time.Now())

	result, err := r.collection.InsertOne(ctx, testimony)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		testimony.ID = oid
	}
	return nil
}

// List returns every testimony. Filtering and ordering happen in the
// handler; legacy documents carry string timestamps the store cannot
// order against native datetimes.
func (r *Repository) List(ctx context.Context) ([]Testimony, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []Testimony
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	if results == nil {
		results = []Testimony{}
	}
	return results, nil
}
