package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the users and password_resets collections.
type Repository struct {
	profiles *mongo.Collection
	resets   *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	profiles := db.Collection("users")
	resets := db.Collection("password_resets")

	_, _ = profiles.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	})

	// TTL index reaps expired reset requests
	_, _ = resets.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})

	return &Repository{profiles: profiles, resets: resets}
}

// CreateProfile inserts the profile document written at signup.
func (r *Repository) CreateProfile(ctx context.Context, profile *Profile) error {
	profile.CreatedAt = time.Now()

	result, err := r.profiles.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("profile duplicate key error: %w", err)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid
	}
	return nil
}

// ProfileByUID finds a profile by the provider-assigned uid.
func (r *Repository) ProfileByUID(ctx context.Context, uid string) (*Profile, error) {
	var profile Profile
	err := r.profiles.FindOne(ctx, bson.M{"uid": uid}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertReset writes the reset request, replacing any live one for the uid.
func (r *Repository) UpsertReset(ctx context.Context, reset *PasswordReset) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.resets.ReplaceOne(ctx, bson.M{"_id": reset.UID}, reset, opts)
	return err
}

// ResetByUID finds the pending reset request for a uid.
func (r *Repository) ResetByUID(ctx context.Context, uid string) (*PasswordReset, error) {
	var reset PasswordReset
	err := r.resets.FindOne(ctx, bson.M{"_id": uid}).Decode(&reset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reset, nil
}

// DeleteReset removes the reset request after a successful reset.
func (r *Repository) DeleteReset(ctx context.Context, uid string) error {
	_, err := r.resets.DeleteOne(ctx, bson.M{"_id": uid})
	return err
}
