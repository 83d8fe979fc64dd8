package items

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

// Repository stores found and lost items in parallel collections.
type Repository struct {
	found *mongo.Collection
	lost  *mongo.Collection
	now   func() time.Time
}

func NewRepository(db *mongo.Database) *Repository {
	found := db.Collection("foundItems")
	lost := db.Collection("lostItems")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "isClaimed", Value: 1}, {Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "itemName", Value: "text"}, {Key: "description", Value: "text"}}},
	}
	_, _ = found.Indexes().CreateMany(context.Background(), indexes)
	_, _ = lost.Indexes().CreateMany(context.Background(), indexes)

	return &Repository{found: found, lost: lost, now: time.Now}
}

// WithClock overrides the repository clock, for tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

func (r *Repository) collection(kind Kind) *mongo.Collection {
	if kind == KindLost {
		return r.lost
	}
	return r.found
}

// Create inserts a new item. Items always start unclaimed.
func (r *Repository) Create(ctx context.Context, kind Kind, ownerID string, req *CreateItemRequest) (*Item, error) {
	if err := ValidateCreateItem(req); err != nil {
		return nil, err
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := r.now()
	item := &Item{
		OwnerID:     ownerID,
		ItemName:    req.ItemName,
		Description: req.Description,
		Categories:  req.Categories,
		Location:    req.Location,
		Images:      images,
		IsClaimed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.collection(kind).InsertOne(ctx, item)
	if err != nil {
		return nil, apperrors.Persistence("items.insert", err)
	}

	item.ID = result.InsertedID.(primitive.ObjectID)
	return item, nil
}

// GetByID returns one item of the given kind.
func (r *Repository) GetByID(ctx context.Context, kind Kind, id string) (*Item, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var item Item
	err = r.collection(kind).FindOne(ctx, bson.M{"_id": objectID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("items.findOne", err)
	}
	return &item, nil
}

// GetFoundItem returns a found item; the claim coordinator works on this kind.
func (r *Repository) GetFoundItem(ctx context.Context, id string) (*Item, error) {
	return r.GetByID(ctx, KindFound, id)
}

// Update merges a patch into the stored item and stamps updatedAt. The patch
// is normalized first so isClaimed always agrees with claimedBy.
func (r *Repository) Update(ctx context.Context, kind Kind, id string, patch bson.M) (*Item, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	set, unset := normalizeClaimPatch(patch, r.now())
	set["updatedAt"] = r.now()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item Item
	err = r.collection(kind).FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("items.update", err)
	}
	return &item, nil
}

// normalizeClaimPatch keeps the claim fields mutually consistent: isClaimed
// mirrors claimedBy, and claimedAt exists only while claimed. It also turns a
// nil location into a field removal.
func normalizeClaimPatch(patch bson.M, now time.Time) (set, unset bson.M) {
	set = bson.M{}
	unset = bson.M{}
	for k, v := range patch {
		set[k] = v
	}

	// A nil location means "clear it": $set with nil would store a literal
	// null instead of removing the field.
	if loc, ok := set["location"]; ok && loc == nil {
		delete(set, "location")
		unset["location"] = ""
	}

	if claimedBy, ok := set["claimedBy"]; ok {
		if claimedBy == nil || claimedBy == "" {
			delete(set, "claimedBy")
			unset["claimedBy"] = ""
			unset["claimedAt"] = ""
			set["isClaimed"] = false
		} else {
			set["isClaimed"] = true
			if _, ok := set["claimedAt"]; !ok {
				set["claimedAt"] = now
			}
		}
		return set, unset
	}

	if isClaimed, ok := set["isClaimed"]; ok {
		if claimed, _ := isClaimed.(bool); !claimed {
			delete(set, "claimedBy")
			unset["claimedBy"] = ""
			unset["claimedAt"] = ""
		} else {
			// isClaimed=true without a claimant would break the claim
			// invariant; the flag only ever follows claimedBy.
			delete(set, "isClaimed")
		}
	}
	return set, unset
}

// UpdateClaim applies a claim transition to a found item. claimedBy == nil
// releases the claim. Runs inside the coordinator's transaction context.
func (r *Repository) UpdateClaim(ctx context.Context, id string, claimedBy *string) (*Item, error) {
	patch := bson.M{}
	if claimedBy == nil {
		patch["claimedBy"] = nil
	} else {
		patch["claimedBy"] = *claimedBy
	}
	return r.Update(ctx, KindFound, id, patch)
}

// Delete permanently removes an item. There is no soft-delete.
func (r *Repository) Delete(ctx context.Context, kind Kind, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection(kind).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Persistence("items.delete", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns items of a kind, newest first.
func (r *Repository) List(ctx context.Context, kind Kind, limit int) ([]Item, error) {
	return r.find(ctx, kind, bson.M{}, limit)
}

// ListUnclaimed returns items of a kind that have not been claimed.
func (r *Repository) ListUnclaimed(ctx context.Context, kind Kind) ([]Item, error) {
	return r.find(ctx, kind, bson.M{"isClaimed": false}, 0)
}

// ListByOwner returns a user's items of a kind.
func (r *Repository) ListByOwner(ctx context.Context, kind Kind, ownerID string) ([]Item, error) {
	return r.find(ctx, kind, bson.M{"ownerId": ownerID}, 0)
}

// ListByCategoryOverlap returns items sharing at least one category with the
// given set, optionally restricted to unclaimed items.
func (r *Repository) ListByCategoryOverlap(ctx context.Context, kind Kind, categories []string, unclaimedOnly bool) ([]Item, error) {
	filter := bson.M{"categories": bson.M{"$in": categories}}
	if unclaimedOnly {
		filter["isClaimed"] = false
	}
	return r.find(ctx, kind, filter, 0)
}

func (r *Repository) find(ctx context.Context, kind Kind, filter bson.M, limit int) ([]Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection(kind).Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence("items.find", err)
	}
	defer cursor.Close(ctx)

	var list []Item
	if err := cursor.All(ctx, &list); err != nil {
		return nil, apperrors.Persistence("items.decode", err)
	}
	if list == nil {
		list = []Item{}
	}
	return list, nil
}
