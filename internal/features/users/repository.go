package users

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

// Repository handles database interactions for users
type Repository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "firebaseUid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "timeoutUntil", Value: 1}},
		},
	})

	return &Repository{collection: collection, now: time.Now}
}

// WithClock overrides the repository clock, for tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	user.CreatedAt = r.now()
	user.UpdatedAt = user.CreatedAt
	if user.Role == "" {
		user.Role = RoleUser
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return apperrors.Persistence("users.insert", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// GetByID finds a user by their hex document ID
func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var user User
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("users.findOne", err)
	}
	return &user, nil
}

// GetByFirebaseUID finds a user by their Firebase UID. Returns nil, nil when
// no user exists yet so sign-in can decide to create one.
func (r *Repository) GetByFirebaseUID(ctx context.Context, uid string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"firebaseUid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperrors.Persistence("users.findOne", err)
	}
	return &user, nil
}

// List returns all users ordered by join date, newest first
func (r *Repository) List(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Persistence("users.find", err)
	}
	defer cursor.Close(ctx)

	var list []User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, apperrors.Persistence("users.decode", err)
	}
	if list == nil {
		list = []User{}
	}
	return list, nil
}

// AssertNotTimedOut fails with a TimeoutError when the user has an active
// moderation timeout. Expired timeouts are ignored, not cleared; cleanup is
// the ClearExpiredTimeouts batch.
func (r *Repository) AssertNotTimedOut(ctx context.Context, userID string) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	return activeTimeout(user, r.now())
}

// activeTimeout reports a TimeoutError while timeoutUntil lies strictly in
// the future. At the stored instant the timeout is already over.
func activeTimeout(user *User, now time.Time) error {
	if user.TimeoutUntil != nil && user.TimeoutUntil.After(now) {
		return &apperrors.TimeoutError{Until: *user.TimeoutUntil}
	}
	return nil
}

// TimeoutUser places a moderation timeout on a user. Admins cannot be timed out.
func (r *Repository) TimeoutUser(ctx context.Context, userID string, until time.Time) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return apperrors.ErrForbidden
	}

	objectID, _ := primitive.ObjectIDFromHex(userID)
	_, err = r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"timeoutUntil": until,
			"status":       StatusTimeout,
			"updatedAt":    r.now(),
		}},
	)
	return apperrors.Persistence("users.timeout", err)
}

// LiftTimeout removes a user's moderation timeout
func (r *Repository) LiftTimeout(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$unset": bson.M{"timeoutUntil": "", "status": ""},
			"$set":   bson.M{"updatedAt": r.now()},
		},
	)
	if err != nil {
		return apperrors.Persistence("users.liftTimeout", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearExpiredTimeouts removes timeoutUntil/status from every user whose
// timeout has already expired, in a single batch.
func (r *Repository) ClearExpiredTimeouts(ctx context.Context) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"timeoutUntil": bson.M{"$lte": r.now()}},
		bson.M{"$unset": bson.M{"timeoutUntil": "", "status": ""}},
	)
	if err != nil {
		return 0, apperrors.Persistence("users.clearTimeouts", err)
	}
	return result.ModifiedCount, nil
}

// IncrementFoundItems bumps the user's found-items counter
func (r *Repository) IncrementFoundItems(ctx context.Context, userID string, delta int) error {
	return r.incrementCounter(ctx, userID, "foundItems", delta)
}

// IncrementReturnedItems bumps the user's returned-items counter. Decrements
// only apply while the counter is positive, so it never drops below zero.
func (r *Repository) IncrementReturnedItems(ctx context.Context, userID string, delta int) error {
	return r.incrementCounter(ctx, userID, "returnedItems", delta)
}

func (r *Repository) incrementCounter(ctx context.Context, userID, field string, delta int) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	filter := bson.M{"_id": objectID}
	if delta < 0 {
		filter[field] = bson.M{"$gt": 0}
	}

	result, err := r.collection.UpdateOne(ctx, filter,
		bson.M{
			"$inc": bson.M{field: delta},
			"$set": bson.M{"updatedAt": r.now()},
		},
	)
	if err != nil {
		return apperrors.Persistence("users.increment", err)
	}
	if result.MatchedCount == 0 && delta >= 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes the user document itself. Cross-collection cleanup is
// handled by the Purger.
func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Persistence("users.delete", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
