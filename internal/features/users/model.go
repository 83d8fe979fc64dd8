package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// StatusTimeout marks a user currently under a moderation timeout.
const StatusTimeout = "timeout"

// DefaultTimeoutDays is how long a moderation timeout lasts.
const DefaultTimeoutDays = 30

// User represents a registered user in the system
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirebaseUID   string             `bson:"firebaseUid" json:"firebaseUid"`
	Email         string             `bson:"email" json:"email"`
	Username      string             `bson:"username" json:"username"`
	Avatar        string             `bson:"avatar" json:"avatar"`
	Role          string             `bson:"role" json:"role"`
	FoundItems    int                `bson:"foundItems" json:"foundItems"`
	ReturnedItems int                `bson:"returnedItems" json:"returnedItems"`
	TimeoutUntil  *time.Time         `bson:"timeoutUntil,omitempty" json:"timeoutUntil,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TimeoutRequest represents the payload for timing out a user
type TimeoutRequest struct {
	Days int `json:"days" example:"30"`
}

// ClearTimeoutsResponse reports how many expired timeouts were removed
type ClearTimeoutsResponse struct {
	ClearedCount int64 `json:"clearedCount"`
}
