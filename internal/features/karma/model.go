package karma

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reason kinds classify ledger entries. Aggregation keys off these tags,
// never off the free-text detail.
const (
	ReasonClaimedItem   = "claimed_item"
	ReasonUnclaimedItem = "unclaimed_item"
)

// Award is the karma delta applied when a found item is claimed; the same
// amount is deducted when a claim is released.
const Award = 50

// Entry is one append-only karma ledger record. A user's total karma is the
// sum of their entries; entries are never mutated or deleted in normal flow.
// Username and avatar are snapshots taken at award time.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Amount    int                `bson:"amount" json:"amount"`
	Reason    string             `bson:"reason" json:"reason"`
	Detail    string             `bson:"detail" json:"detail"`
	Username  string             `bson:"username" json:"username"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// LeaderboardEntry is one ranked row of the karma leaderboard.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	TotalKarma    int    `json:"totalKarma"`
	FoundItems    int    `json:"foundItems"`
	ReturnedItems int    `json:"returnedItems"`
}
