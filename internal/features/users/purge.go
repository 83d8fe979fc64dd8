package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/foundly/internal/database"
	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

// Purger deletes every document a user owns across the collections this
// service writes, plus the user document itself, as one transaction.
type Purger struct {
	mdb *database.MongoDB
}

func NewPurger(mdb *database.MongoDB) *Purger {
	return &Purger{mdb: mdb}
}

// userOwnedCollections maps collection name to the field holding the owner ID.
var userOwnedCollections = map[string]string{
	"karma":         "userId",
	"notifications": "userId",
	"foundItems":    "ownerId",
	"lostItems":     "ownerId",
}

// PurgeUser removes all of a user's data. Reports the user filed stay for
// the moderation audit trail, and Cloudinary-hosted photos are not touched.
func (p *Purger) PurgeUser(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	db := p.mdb.Database

	err = p.mdb.WithTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		for name, field := range userOwnedCollections {
			if _, err := db.Collection(name).DeleteMany(sessCtx, bson.M{field: userID}); err != nil {
				return err
			}
		}

		result := db.Collection("users").FindOneAndDelete(sessCtx, bson.M{"_id": objectID})
		if err := result.Err(); err != nil && err != mongo.ErrNoDocuments {
			return err
		}
		return nil
	})

	return apperrors.Persistence("users.purge", err)
}
