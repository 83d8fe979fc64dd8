package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/xyz-asif/foundly/internal/features/items"
	"github.com/xyz-asif/foundly/internal/features/notifications"
	"github.com/xyz-asif/foundly/internal/pkg/geo"
	"github.com/xyz-asif/foundly/internal/pkg/logger"
)

// MaxMatchDistanceKm gates matches when both items carry a location.
const MaxMatchDistanceKm = 1.0

// LostItemSource lists unclaimed lost items overlapping a category set.
type LostItemSource interface {
	ListByCategoryOverlap(ctx context.Context, kind items.Kind, categories []string, unclaimedOnly bool) ([]items.Item, error)
}

// NotificationSink appends match notifications to the ledger.
type NotificationSink interface {
	CreateNotification(ctx context.Context, notification *notifications.Notification) error
}

// Service scans lost-item reports when a found item is posted and notifies
// owners of likely matches. Matching runs in one direction only: posting a
// lost item does not scan found items.
type Service struct {
	lostItems     LostItemSource
	notifications NotificationSink
}

func NewService(lostItems LostItemSource, sink NotificationSink) *Service {
	return &Service{lostItems: lostItems, notifications: sink}
}

// MatchFoundItem finds unclaimed lost items that share a category with the
// given found item and notifies each owner. When both items carry a
// location, candidates farther than MaxMatchDistanceKm are skipped; items
// without a location match on category alone.
//
// The found item must already be committed. Each notification is attempted
// independently: one failure never stops the rest, and nothing here rolls
// the item back. Returns the number of notifications created and the
// collected per-candidate errors.
func (s *Service) MatchFoundItem(ctx context.Context, found *items.Item) (int, error) {
	candidates, err := s.lostItems.ListByCategoryOverlap(ctx, items.KindLost, found.Categories, true)
	if err != nil {
		return 0, err
	}

	created := 0
	var failures []error
	for i := range candidates {
		lost := &candidates[i]

		if lost.OwnerID == found.OwnerID {
			continue
		}
		if !withinRange(found.Location, lost.Location) {
			continue
		}

		notification := &notifications.Notification{
			UserID:  lost.OwnerID,
			Type:    notifications.TypeMatch,
			Title:   "Possible match for your lost item",
			Message: fmt.Sprintf("Someone found \"%s\" near you. It may be your \"%s\".", found.ItemName, lost.ItemName),
			ItemID:  found.ID.Hex(),
		}

		if err := s.notifications.CreateNotification(ctx, notification); err != nil {
			logger.Error("match notification failed: recipient=%s foundItem=%s lostItem=%s: %v",
				lost.OwnerID, found.ID.Hex(), lost.ID.Hex(), err)
			failures = append(failures, fmt.Errorf("notify %s: %w", lost.OwnerID, err))
			continue
		}
		created++
	}

	return created, errors.Join(failures...)
}

// withinRange applies the distance gate. A missing location on either side
// means the pair matches on category alone.
func withinRange(a, b *geo.Point) bool {
	if a == nil || b == nil {
		return true
	}
	return geo.DistanceKm(*a, *b) <= MaxMatchDistanceKm
}
