package safety

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses
const (
	StatusPending   = "pending"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// Report reasons
const (
	ReasonFraudulent    = "fraudulent_listing"
	ReasonFalseClaim    = "false_claim"
	ReasonInappropriate = "inappropriate_content"
	ReasonOther         = "other"
)

// Report is a user-filed complaint about another user or one of their item
// listings. Admins review reports and act through the moderation endpoints.
type Report struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID   string             `bson:"reporterId" json:"reporterId"`
	TargetUserID string             `bson:"targetUserId" json:"targetUserId"`
	ItemID       *string            `bson:"itemId,omitempty" json:"itemId,omitempty"`
	ItemKind     *string            `bson:"itemKind,omitempty" json:"itemKind,omitempty"`
	Reason       string             `bson:"reason" json:"reason"`
	Details      string             `bson:"details" json:"details"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateReportRequest files a new report.
type CreateReportRequest struct {
	TargetUserID string  `json:"targetUserId" binding:"required"`
	ItemID       *string `json:"itemId"`
	ItemKind     *string `json:"itemKind"`
	Reason       string  `json:"reason" binding:"required"`
	Details      string  `json:"details" binding:"max=1000"`
}

// UpdateReportStatusRequest closes out a report.
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=resolved dismissed"`
}
