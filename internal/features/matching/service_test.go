package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/foundly/internal/features/items"
	"github.com/xyz-asif/foundly/internal/features/notifications"
	"github.com/xyz-asif/foundly/internal/pkg/geo"
)

type fakeLostItems struct {
	items         []items.Item
	err           error
	gotCategories []string
	gotUnclaimed  bool
}

func (f *fakeLostItems) ListByCategoryOverlap(ctx context.Context, kind items.Kind, categories []string, unclaimedOnly bool) ([]items.Item, error) {
	f.gotCategories = categories
	f.gotUnclaimed = unclaimedOnly
	return f.items, f.err
}

type fakeSink struct {
	created []notifications.Notification
	failFor map[string]error
}

func (f *fakeSink) CreateNotification(ctx context.Context, n *notifications.Notification) error {
	if err := f.failFor[n.UserID]; err != nil {
		return err
	}
	f.created = append(f.created, *n)
	return nil
}

func lostItem(owner, name string, categories []string, loc *geo.Point) items.Item {
	return items.Item{
		ID:         primitive.NewObjectID(),
		OwnerID:    owner,
		ItemName:   name,
		Categories: categories,
		Location:   loc,
	}
}

func foundItem(owner, name string, categories []string, loc *geo.Point) *items.Item {
	item := lostItem(owner, name, categories, loc)
	return &item
}

func TestMatchFoundItem_NotifiesOwnerOnCategoryAndProximity(t *testing.T) {
	lost := &fakeLostItems{items: []items.Item{
		lostItem("owner-1", "Brown wallet", []string{"Wallets"}, &geo.Point{Latitude: 10, Longitude: 10}),
	}}
	sink := &fakeSink{}
	svc := NewService(lost, sink)

	found := foundItem("finder-1", "Leather wallet", []string{"Wallets", "Keys"},
		&geo.Point{Latitude: 10.005, Longitude: 10.005})

	created, err := svc.MatchFoundItem(context.Background(), found)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	require.True(t, lost.gotUnclaimed, "scan must be restricted to unclaimed lost items")
	require.Equal(t, found.Categories, lost.gotCategories)

	require.Len(t, sink.created, 1)
	n := sink.created[0]
	require.Equal(t, "owner-1", n.UserID)
	require.Equal(t, notifications.TypeMatch, n.Type)
	require.Equal(t, found.ID.Hex(), n.ItemID)
	require.Contains(t, n.Message, "Leather wallet")
}

func TestMatchFoundItem_DistanceGate(t *testing.T) {
	near := &geo.Point{Latitude: 0, Longitude: 0.0089} // ~0.99 km east
	far := &geo.Point{Latitude: 0, Longitude: 0.02}    // ~2.2 km east
	origin := &geo.Point{Latitude: 0, Longitude: 0}

	lost := &fakeLostItems{items: []items.Item{
		lostItem("near-owner", "Phone", []string{"Electronics"}, near),
		lostItem("far-owner", "Tablet", []string{"Electronics"}, far),
	}}
	sink := &fakeSink{}
	svc := NewService(lost, sink)

	created, err := svc.MatchFoundItem(context.Background(),
		foundItem("finder", "Phone", []string{"Electronics"}, origin))
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Len(t, sink.created, 1)
	require.Equal(t, "near-owner", sink.created[0].UserID)
}

func TestMatchFoundItem_MissingLocationMatchesOnCategoryAlone(t *testing.T) {
	lost := &fakeLostItems{items: []items.Item{
		lostItem("owner-1", "Keys", []string{"Keys"}, nil),
	}}
	sink := &fakeSink{}
	svc := NewService(lost, sink)

	created, err := svc.MatchFoundItem(context.Background(),
		foundItem("finder", "Key bunch", []string{"Keys"}, &geo.Point{Latitude: 50, Longitude: 50}))
	require.NoError(t, err)
	require.Equal(t, 1, created)
}

func TestMatchFoundItem_SkipsSelfMatch(t *testing.T) {
	lost := &fakeLostItems{items: []items.Item{
		lostItem("same-user", "Bag", []string{"Bags"}, nil),
	}}
	sink := &fakeSink{}
	svc := NewService(lost, sink)

	created, err := svc.MatchFoundItem(context.Background(),
		foundItem("same-user", "Bag", []string{"Bags"}, nil))
	require.NoError(t, err)
	require.Zero(t, created)
	require.Empty(t, sink.created)
}

func TestMatchFoundItem_FailureIsolation(t *testing.T) {
	lost := &fakeLostItems{items: []items.Item{
		lostItem("owner-1", "Jacket", []string{"Clothing"}, nil),
		lostItem("owner-2", "Coat", []string{"Clothing"}, nil),
		lostItem("owner-3", "Scarf", []string{"Clothing"}, nil),
	}}
	sink := &fakeSink{failFor: map[string]error{
		"owner-2": errors.New("write failed"),
	}}
	svc := NewService(lost, sink)

	created, err := svc.MatchFoundItem(context.Background(),
		foundItem("finder", "Jacket", []string{"Clothing"}, nil))

	// owner-2's failure is reported but must not stop owner-1 and owner-3.
	require.Error(t, err)
	require.Equal(t, 2, created)
	require.Len(t, sink.created, 2)
}

func TestMatchFoundItem_ScanFailurePropagates(t *testing.T) {
	lost := &fakeLostItems{err: errors.New("query failed")}
	svc := NewService(lost, &fakeSink{})

	created, err := svc.MatchFoundItem(context.Background(),
		foundItem("finder", "Book", []string{"Books"}, nil))
	require.Error(t, err)
	require.Zero(t, created)
}
