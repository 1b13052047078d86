package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicswipe/internal/model"
)

// SpecRepo handles MongoDB operations for the assessment spec. The spec
// is immutable reference data; new versions are inserted, never patched.
type SpecRepo interface {
	Insert(ctx context.Context, spec *model.Spec) error
	GetLatest(ctx context.Context) (*model.Spec, error)
	GetVersion(ctx context.Context, version int) (*model.Spec, error)
}

type specRepo struct {
	collection *mongo.Collection
}

// NewSpecRepo creates a new spec repository
func NewSpecRepo(db *mongo.Database) SpecRepo {
	return &specRepo{
		collection: db.Collection("specs"),
	}
}

func (r *specRepo) Insert(ctx context.Context, spec *model.Spec) error {
	if spec.CreatedAt.IsZero() {
		spec.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, spec)
	return err
}

func (r *specRepo) GetLatest(ctx context.Context) (*model.Spec, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})

	var spec model.Spec
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&spec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *specRepo) GetVersion(ctx context.Context, version int) (*model.Spec, error) {
	var spec model.Spec
	err := r.collection.FindOne(ctx, bson.M{"version": version}).Decode(&spec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
