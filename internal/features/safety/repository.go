package safety

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

var validReasons = map[string]bool{
	ReasonFraudulent:    true,
	ReasonFalseClaim:    true,
	ReasonInappropriate: true,
	ReasonOther:         true,
}

type Repository struct {
	reports *mongo.Collection
	now     func() time.Time
}

func NewRepository(db *mongo.Database) *Repository {
	reports := db.Collection("reports")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "targetUserId", Value: 1}}},
	}
	_, _ = reports.Indexes().CreateMany(context.Background(), indexes)

	return &Repository{reports: reports, now: time.Now}
}

// WithClock overrides the repository clock, for tests.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// CreateReport files a report. Reporting yourself is rejected.
func (r *Repository) CreateReport(ctx context.Context, reporterID string, req *CreateReportRequest) (*Report, error) {
	if req.TargetUserID == reporterID {
		return nil, apperrors.NewValidation("targetUserId", "cannot report yourself")
	}
	if !validReasons[req.Reason] {
		return nil, apperrors.NewValidation("reason", "unknown report reason")
	}

	now := r.now()
	report := &Report{
		ReporterID:   reporterID,
		TargetUserID: req.TargetUserID,
		ItemID:       req.ItemID,
		ItemKind:     req.ItemKind,
		Reason:       req.Reason,
		Details:      req.Details,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := r.reports.InsertOne(ctx, report)
	if err != nil {
		return nil, apperrors.Persistence("reports.insert", err)
	}
	report.ID = result.InsertedID.(primitive.ObjectID)
	return report, nil
}

// ListByStatus returns reports in a status, newest first. Empty status means
// all reports.
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]Report, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.reports.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence("reports.find", err)
	}
	defer cursor.Close(ctx)

	var list []Report
	if err := cursor.All(ctx, &list); err != nil {
		return nil, apperrors.Persistence("reports.decode", err)
	}
	if list == nil {
		list = []Report{}
	}
	return list, nil
}

// UpdateStatus closes a pending report as resolved or dismissed.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	if status != StatusResolved && status != StatusDismissed {
		return nil, apperrors.NewValidation("status", "must be \"resolved\" or \"dismissed\"")
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": r.now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var report Report
	err = r.reports.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("reports.update", err)
	}
	return &report, nil
}
