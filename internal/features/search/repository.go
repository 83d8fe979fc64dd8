package search

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/foundly/internal/features/items"
	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

// Repository runs text searches over the two item collections. It reads the
// same documents the items feature writes; the text index lives on itemName
// and description.
type Repository struct {
	found *mongo.Collection
	lost  *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		found: db.Collection("foundItems"),
		lost:  db.Collection("lostItems"),
	}
}

func (r *Repository) collection(kind items.Kind) *mongo.Collection {
	if kind == items.KindLost {
		return r.lost
	}
	return r.found
}

// SearchItems performs text search on one item collection.
func (r *Repository) SearchItems(ctx context.Context, kind items.Kind, query, category, sort string, page, limit int) ([]ItemSearchDoc, int64, error) {
	filter := bson.M{
		"$text": bson.M{"$search": query},
	}
	if category != "" {
		filter["categories"] = bson.M{
			"$regex": primitive.Regex{
				Pattern: "^" + strings.ToLower(category) + "$",
				Options: "i",
			},
		}
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	switch sort {
	case SortRecent:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	default: // relevant
		opts.SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}})
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}

	cursor, err := r.collection(kind).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Persistence("search.find", err)
	}
	defer cursor.Close(ctx)

	var docs []ItemSearchDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, apperrors.Persistence("search.decode", err)
	}
	if docs == nil {
		docs = []ItemSearchDoc{}
	}

	total, err := r.collection(kind).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Persistence("search.count", err)
	}

	return docs, total, nil
}

// SearchCategories returns categories matching a prefix with usage counts,
// most used first.
func (r *Repository) SearchCategories(ctx context.Context, kind items.Kind, prefix string) ([]CategoryResult, error) {
	prefixRegex := primitive.Regex{
		Pattern: "^" + strings.ToLower(prefix),
		Options: "i",
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"categories": bson.M{"$elemMatch": bson.M{"$regex": prefixRegex}},
		}}},
		{{Key: "$unwind", Value: "$categories"}},
		{{Key: "$match", Value: bson.M{
			"categories": bson.M{"$regex": prefixRegex},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$categories",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"name":  "$_id",
			"count": 1,
		}}},
	}

	cursor, err := r.collection(kind).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.Persistence("search.categories", err)
	}
	defer cursor.Close(ctx)

	var results []CategoryResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, apperrors.Persistence("search.categories.decode", err)
	}
	if results == nil {
		results = []CategoryResult{}
	}

	return results, nil
}
