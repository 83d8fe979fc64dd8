package items

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/foundly/internal/pkg/geo"
	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

// Kind selects between the two item collections.
type Kind string

const (
	KindFound Kind = "found"
	KindLost  Kind = "lost"
)

// ParseKind validates a kind from a URL segment.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFound, KindLost:
		return Kind(s), nil
	}
	return "", apperrors.NewValidation("kind", "must be \"found\" or \"lost\"")
}

// Categories is the fixed set of item category tags.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Accessories",
	"Documents",
	"Keys",
	"Bags",
	"Books",
	"Wallets",
	"Others",
}

// MaxImages caps the number of inline photos per item.
const MaxImages = 3

// Item represents a found or lost item listing. The two kinds are
// structurally identical and live in parallel collections.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     string             `bson:"ownerId" json:"ownerId"`
	ItemName    string             `bson:"itemName" json:"itemName"`
	Description string             `bson:"description" json:"description"`
	Categories  []string           `bson:"categories" json:"categories"`
	Location    *geo.Point         `bson:"location,omitempty" json:"location,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	IsClaimed   bool               `bson:"isClaimed" json:"isClaimed"`
	ClaimedBy   *string            `bson:"claimedBy,omitempty" json:"claimedBy,omitempty"`
	ClaimedAt   *time.Time         `bson:"claimedAt,omitempty" json:"claimedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateItemRequest represents item creation data
type CreateItemRequest struct {
	ItemName    string     `json:"itemName" example:"Black leather wallet"`
	Description string     `json:"description" example:"Found near the central park fountain"`
	Categories  []string   `json:"categories" example:"Wallets"`
	Location    *geo.Point `json:"location,omitempty"`
	Images      []string   `json:"images"`
}

// UpdateItemRequest represents item update data. Nil fields are left
// unchanged; ClearLocation drops the stored location. Claim transitions go
// through the claims endpoint, not here.
type UpdateItemRequest struct {
	ItemName      *string    `json:"itemName"`
	Description   *string    `json:"description"`
	Categories    []string   `json:"categories"`
	Location      *geo.Point `json:"location,omitempty"`
	ClearLocation bool       `json:"clearLocation,omitempty"`
	Images        []string   `json:"images"`
}
