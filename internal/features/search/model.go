package search

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/foundly/internal/pkg/geo"
)

// Sort constants
const (
	SortRelevant = "relevant"
	SortRecent   = "recent"
)

// ItemSearchQuery for GET /search/items
type ItemSearchQuery struct {
	Q        string `form:"q" binding:"required,min=2,max=100"`
	Kind     string `form:"kind,default=found"`
	Category string `form:"category"`
	Sort     string `form:"sort,default=relevant"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=20" binding:"min=1,max=50"`
}

// CategorySearchQuery for GET /search/categories
type CategorySearchQuery struct {
	Q    string `form:"q" binding:"required,min=1,max=50"`
	Kind string `form:"kind,default=found"`
}

// ItemSearchDoc represents an item document returned from text search.
type ItemSearchDoc struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	OwnerID     string             `bson:"ownerId" json:"ownerId"`
	ItemName    string             `bson:"itemName" json:"itemName"`
	Description string             `bson:"description" json:"description"`
	Categories  []string           `bson:"categories" json:"categories"`
	Location    *geo.Point         `bson:"location,omitempty" json:"location,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	IsClaimed   bool               `bson:"isClaimed" json:"isClaimed"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Score       float64            `bson:"score,omitempty" json:"-"`
}

// CategoryResult for category autocomplete with usage counts.
type CategoryResult struct {
	Name  string `bson:"name" json:"name"`
	Count int    `bson:"count" json:"count"`
}
