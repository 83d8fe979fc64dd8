package claims

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/foundly/internal/features/items"
	"github.com/xyz-asif/foundly/internal/features/karma"
	"github.com/xyz-asif/foundly/internal/features/users"
	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

type fakeItemStore struct {
	item *items.Item
}

func (f *fakeItemStore) GetFoundItem(ctx context.Context, id string) (*items.Item, error) {
	if f.item == nil || f.item.ID.Hex() != id {
		return nil, apperrors.ErrNotFound
	}
	copied := *f.item
	return &copied, nil
}

func (f *fakeItemStore) UpdateClaim(ctx context.Context, id string, claimedBy *string) (*items.Item, error) {
	if f.item == nil || f.item.ID.Hex() != id {
		return nil, apperrors.ErrNotFound
	}
	f.item.ClaimedBy = claimedBy
	f.item.IsClaimed = claimedBy != nil
	copied := *f.item
	return &copied, nil
}

type fakeLedger struct {
	entries []karma.Entry
	err     error
}

func (f *fakeLedger) Append(ctx context.Context, entry *karma.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)
	return nil
}

type fakeStats struct {
	owner  *users.User
	deltas []int
	err    error
}

func (f *fakeStats) GetByID(ctx context.Context, id string) (*users.User, error) {
	if f.owner == nil || f.owner.ID.Hex() != id {
		return nil, apperrors.ErrNotFound
	}
	return f.owner, nil
}

func (f *fakeStats) IncrementReturnedItems(ctx context.Context, userID string, delta int) error {
	if f.err != nil {
		return f.err
	}
	f.deltas = append(f.deltas, delta)
	return nil
}

// fakeTx snapshots the fakes before fn and restores them when fn fails,
// mirroring a real session abort.
type fakeTx struct {
	itemStore *fakeItemStore
	ledger    *fakeLedger
	stats     *fakeStats
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	var itemSnap *items.Item
	if f.itemStore.item != nil {
		copied := *f.itemStore.item
		itemSnap = &copied
	}
	entriesSnap := append([]karma.Entry(nil), f.ledger.entries...)
	deltasSnap := append([]int(nil), f.stats.deltas...)

	if err := fn(ctx); err != nil {
		f.itemStore.item = itemSnap
		f.ledger.entries = entriesSnap
		f.stats.deltas = deltasSnap
		return err
	}
	return nil
}

type fixture struct {
	service *Service
	items   *fakeItemStore
	ledger  *fakeLedger
	stats   *fakeStats
	item    *items.Item
	owner   *users.User
}

func newFixture() *fixture {
	owner := &users.User{
		ID:       primitive.NewObjectID(),
		Username: "finder",
		Avatar:   "https://example.com/finder.png",
	}
	item := &items.Item{
		ID:       primitive.NewObjectID(),
		OwnerID:  owner.ID.Hex(),
		ItemName: "Black Wallet",
	}

	itemStore := &fakeItemStore{item: item}
	ledger := &fakeLedger{}
	stats := &fakeStats{owner: owner}
	tx := &fakeTx{itemStore: itemStore, ledger: ledger, stats: stats}

	return &fixture{
		service: NewService(itemStore, ledger, stats, tx),
		items:   itemStore,
		ledger:  ledger,
		stats:   stats,
		item:    item,
		owner:   owner,
	}
}

// asOwner is the actor for the item's finder, who performs most transitions.
func (f *fixture) asOwner() Actor {
	return Actor{ID: f.item.OwnerID}
}

func ptr(s string) *string { return &s }

func TestSetClaim_AwardsKarmaOnClaim(t *testing.T) {
	f := newFixture()
	claimant := primitive.NewObjectID().Hex()

	updated, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(claimant), f.asOwner())
	require.NoError(t, err)
	require.True(t, updated.IsClaimed)
	require.Equal(t, claimant, *updated.ClaimedBy)

	require.Len(t, f.ledger.entries, 1)
	entry := f.ledger.entries[0]
	require.Equal(t, f.owner.ID.Hex(), entry.UserID)
	require.Equal(t, karma.Award, entry.Amount)
	require.Equal(t, karma.ReasonClaimedItem, entry.Reason)
	require.Equal(t, "finder", entry.Username)
	require.Equal(t, f.owner.Avatar, entry.Avatar)

	require.Equal(t, []int{1}, f.stats.deltas)
}

func TestSetClaim_Idempotent(t *testing.T) {
	f := newFixture()
	claimant := primitive.NewObjectID().Hex()

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(claimant), f.asOwner())
	require.NoError(t, err)
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(claimant), f.asOwner())
	require.NoError(t, err)

	require.Len(t, f.ledger.entries, 1)
	require.Equal(t, []int{1}, f.stats.deltas)

	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), nil, f.asOwner())
	require.NoError(t, err)
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), nil, f.asOwner())
	require.NoError(t, err)

	require.Len(t, f.ledger.entries, 2)
	require.Equal(t, []int{1, -1}, f.stats.deltas)
}

func TestSetClaim_UnclaimReversesAward(t *testing.T) {
	f := newFixture()
	claimant := primitive.NewObjectID().Hex()

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(claimant), f.asOwner())
	require.NoError(t, err)
	updated, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), nil, f.asOwner())
	require.NoError(t, err)

	require.False(t, updated.IsClaimed)
	require.Nil(t, updated.ClaimedBy)

	require.Len(t, f.ledger.entries, 2)
	require.Equal(t, -karma.Award, f.ledger.entries[1].Amount)
	require.Equal(t, karma.ReasonUnclaimedItem, f.ledger.entries[1].Reason)

	total := 0
	for _, e := range f.ledger.entries {
		total += e.Amount
	}
	require.Zero(t, total)
	require.Equal(t, []int{1, -1}, f.stats.deltas)
}

func TestSetClaim_SelfClaimRejected(t *testing.T) {
	f := newFixture()

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(f.item.OwnerID), f.asOwner())
	require.ErrorIs(t, err, apperrors.ErrSelfClaim)
	require.Empty(t, f.ledger.entries)

	// Rejected even when someone else already holds the claim.
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(primitive.NewObjectID().Hex()), f.asOwner())
	require.NoError(t, err)
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(f.item.OwnerID), f.asOwner())
	require.ErrorIs(t, err, apperrors.ErrSelfClaim)
}

func TestSetClaim_NonOwnerForbidden(t *testing.T) {
	f := newFixture()
	stranger := primitive.NewObjectID().Hex()

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(stranger), Actor{ID: stranger})
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	require.False(t, f.items.item.IsClaimed)
	require.Nil(t, f.items.item.ClaimedBy)
	require.Empty(t, f.ledger.entries)
	require.Empty(t, f.stats.deltas)

	// Releasing someone else's claim is forbidden too.
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(stranger), f.asOwner())
	require.NoError(t, err)
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), nil, Actor{ID: stranger})
	require.ErrorIs(t, err, apperrors.ErrForbidden)
	require.True(t, f.items.item.IsClaimed)
}

func TestSetClaim_AdminMayActForOwner(t *testing.T) {
	f := newFixture()
	claimant := primitive.NewObjectID().Hex()
	admin := Actor{ID: primitive.NewObjectID().Hex(), IsAdmin: true}

	updated, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(claimant), admin)
	require.NoError(t, err)
	require.True(t, updated.IsClaimed)
	require.Len(t, f.ledger.entries, 1)
	require.Equal(t, f.owner.ID.Hex(), f.ledger.entries[0].UserID)

	// Self-claim stays rejected even for admins.
	_, err = f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(f.item.OwnerID), admin)
	require.ErrorIs(t, err, apperrors.ErrSelfClaim)
}

func TestSetClaim_ReassignmentMovesClaimOnly(t *testing.T) {
	f := newFixture()
	first := primitive.NewObjectID().Hex()
	second := primitive.NewObjectID().Hex()

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(first), f.asOwner())
	require.NoError(t, err)
	updated, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(second), f.asOwner())
	require.NoError(t, err)

	require.Equal(t, second, *updated.ClaimedBy)
	require.Len(t, f.ledger.entries, 1)
	require.Equal(t, []int{1}, f.stats.deltas)
}

func TestSetClaim_LedgerFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.ledger.err = errors.New("ledger down")

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(primitive.NewObjectID().Hex()), f.asOwner())
	require.Error(t, err)

	require.False(t, f.items.item.IsClaimed)
	require.Nil(t, f.items.item.ClaimedBy)
	require.Empty(t, f.stats.deltas)
}

func TestSetClaim_StatsFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.stats.err = errors.New("stats down")

	_, err := f.service.SetClaim(context.Background(), f.item.ID.Hex(), ptr(primitive.NewObjectID().Hex()), f.asOwner())
	require.Error(t, err)

	require.False(t, f.items.item.IsClaimed)
	require.Empty(t, f.ledger.entries)
}

func TestSetClaim_UnknownItem(t *testing.T) {
	f := newFixture()

	_, err := f.service.SetClaim(context.Background(), primitive.NewObjectID().Hex(), ptr("someone"), f.asOwner())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
