package karma

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("karma")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection, now: time.Now}
}

// WithClock overrides the repository clock, for tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Append adds one entry to the ledger. Entries are never updated in place;
// storing karma as a single overwritable per-user document loses history.
func (r *Repository) Append(ctx context.Context, entry *Entry) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = r.now()

	_, err := r.collection.InsertOne(ctx, entry)
	return apperrors.Persistence("karma.insert", err)
}

// ListByUser returns a user's ledger entries, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ListAll returns the entire ledger, newest first. Used by the leaderboard
// full-scan aggregation.
func (r *Repository) ListAll(ctx context.Context) ([]Entry, error) {
	return r.find(ctx, bson.M{})
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence("karma.find", err)
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperrors.Persistence("karma.decode", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
