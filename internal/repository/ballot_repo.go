package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"civicswipe/internal/model"
)

// BallotRepo handles MongoDB operations for elections and ballot items.
// Ballot data is read-only input sourced externally; the API only ever
// serves it.
type BallotRepo interface {
	InsertElection(ctx context.Context, election *model.Election) error
	InsertItem(ctx context.Context, item *model.BallotItem) error
	GetElections(ctx context.Context) ([]*model.Election, error)
	GetItemsByElection(ctx context.Context, electionID string) ([]*model.BallotItem, error)
	GetItemByID(ctx context.Context, id string) (*model.BallotItem, error)
}

type ballotRepo struct {
	elections *mongo.Collection
	items     *mongo.Collection
}

// NewBallotRepo creates a new ballot repository
func NewBallotRepo(db *mongo.Database) BallotRepo {
	return &ballotRepo{
		elections: db.Collection("elections"),
		items:     db.Collection("ballot_items"),
	}
}

func (r *ballotRepo) InsertElection(ctx context.Context, election *model.Election) error {
	_, err := r.elections.InsertOne(ctx, election)
	return err
}

func (r *ballotRepo) InsertItem(ctx context.Context, item *model.BallotItem) error {
	result, err := r.items.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

func (r *ballotRepo) GetElections(ctx context.Context) ([]*model.Election, error) {
	cursor, err := r.elections.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var elections []*model.Election
	if err := cursor.All(ctx, &elections); err != nil {
		return nil, err
	}
	return elections, nil
}

func (r *ballotRepo) GetItemsByElection(ctx context.Context, electionID string) ([]*model.BallotItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{"electionId": electionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.BallotItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ballotRepo) GetItemByID(ctx context.Context, id string) (*model.BallotItem, error) {
	filter := bson.M{"_id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": oid}
	}

	var item model.BallotItem
	err := r.items.FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
