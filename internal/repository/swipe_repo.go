package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicswipe/internal/model"
)

// SwipeRepo is the append-only swipe log. Events are never updated or
// deleted individually; scoring always reads the full ordered log.
type SwipeRepo interface {
	Append(ctx context.Context, event *model.SwipeEvent) error
	GetByUserID(ctx context.Context, userID string) ([]model.SwipeEvent, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) error // full restart only
}

type swipeRepo struct {
	collection *mongo.Collection
}

// NewSwipeRepo creates a new swipe log repository
func NewSwipeRepo(db *mongo.Database) SwipeRepo {
	return &swipeRepo{
		collection: db.Collection("swipes"),
	}
}

func (r *swipeRepo) Append(ctx context.Context, event *model.SwipeEvent) error {
	if event.SwipedAt.IsZero() {
		event.SwipedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid.Hex()
	}
	return nil
}

func (r *swipeRepo) GetByUserID(ctx context.Context, userID string) ([]model.SwipeEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "swipedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.SwipeEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *swipeRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}

func (r *swipeRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
