package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicswipe/internal/model"
)

// ProfileRepo handles MongoDB operations for blueprint profiles. Each
// user owns exactly one profile, so writes are upserts keyed by userId.
type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.BlueprintProfile, error)
	Save(ctx context.Context, profile *model.BlueprintProfile) error
	Delete(ctx context.Context, userID string) error
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.BlueprintProfile, error) {
	var profile model.BlueprintProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Save(ctx context.Context, profile *model.BlueprintProfile) error {
	filter := bson.M{"userId": profile.UserID}
	update := bson.M{"$set": bson.M{
		"userId":    profile.UserID,
		"version":   profile.Version,
		"domains":   profile.Domains,
		"updatedAt": profile.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *profileRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
