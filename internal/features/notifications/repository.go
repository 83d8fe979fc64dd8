package notifications

import (
	"context"
	"errors"
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
	collection := db.Collection("notifications")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "read", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
		},
	})

	return &Repository{collection: collection, now: time.Now}
}

// WithClock overrides the repository clock, for tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// CreateNotification appends one notification to the ledger
func (r *Repository) CreateNotification(ctx context.Context, notification *Notification) error {
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = r.now()
	notification.Read = false

	_, err := r.collection.InsertOne(ctx, notification)
	return apperrors.Persistence("notifications.insert", err)
}

// GetByID retrieves a notification
func (r *Repository) GetByID(ctx context.Context, id string) (*Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var notification Notification
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("notifications.findOne", err)
	}
	return &notification, nil
}

// ListByUser retrieves a user's notifications, unread first then newest
func (r *Repository) ListByUser(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]Notification, int64, error) {
	filter := bson.M{"userId": userID}
	if unreadOnly {
		filter["read"] = false
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "read", Value: 1},
			{Key: "createdAt", Value: -1},
		}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Persistence("notifications.find", err)
	}
	defer cursor.Close(ctx)

	var list []Notification
	if err = cursor.All(ctx, &list); err != nil {
		return nil, 0, apperrors.Persistence("notifications.decode", err)
	}
	if list == nil {
		list = []Notification{}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Persistence("notifications.count", err)
	}

	return list, total, nil
}

// CountUnread counts unread notifications for a user
func (r *Repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"userId": userID,
		"read":   false,
	})
	if err != nil {
		return 0, apperrors.Persistence("notifications.count", err)
	}
	return count, nil
}

// MarkAsRead flips the read flag. Marking an already-read notification is a
// no-op, so the call is idempotent.
func (r *Repository) MarkAsRead(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return apperrors.Persistence("notifications.markRead", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllAsRead marks every unread notification of a user as read
func (r *Repository) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, apperrors.Persistence("notifications.markAllRead", err)
	}
	return result.ModifiedCount, nil
}
