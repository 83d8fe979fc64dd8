package karma

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/foundly/internal/features/users"
)

type fakeUsers struct {
	users []users.User
	err   error
}

func (f *fakeUsers) List(ctx context.Context) ([]users.User, error) {
	return f.users, f.err
}

type fakeEntries struct {
	entries []Entry
	err     error
}

func (f *fakeEntries) ListAll(ctx context.Context) ([]Entry, error) {
	return f.entries, f.err
}

func newUser(username string, found, returned int) users.User {
	return users.User{
		ID:            primitive.NewObjectID(),
		Username:      username,
		FoundItems:    found,
		ReturnedItems: returned,
	}
}

func TestComputeLeaderboard_RanksByTotalKarma(t *testing.T) {
	u1 := newUser("alice", 3, 2)
	u2 := newUser("bob", 5, 3)
	u3 := newUser("carol", 0, 0)

	entries := []Entry{
		{UserID: u1.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
		{UserID: u1.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
		{UserID: u2.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
		{UserID: u2.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
		{UserID: u2.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
	}

	agg := NewAggregator(&fakeUsers{users: []users.User{u1, u2, u3}}, &fakeEntries{entries: entries})
	board, err := agg.ComputeLeaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, board, 3)
	require.Equal(t, []int{1, 2, 3}, []int{board[0].Rank, board[1].Rank, board[2].Rank})
	require.Equal(t, "bob", board[0].Username)
	require.Equal(t, 150, board[0].TotalKarma)
	require.Equal(t, "alice", board[1].Username)
	require.Equal(t, 100, board[1].TotalKarma)
	require.Equal(t, "carol", board[2].Username)
	require.Zero(t, board[2].TotalKarma)

	require.Equal(t, 5, board[0].FoundItems)
	require.Equal(t, 3, board[0].ReturnedItems)
}

func TestComputeLeaderboard_NegativeEntriesReduceTotal(t *testing.T) {
	u := newUser("dave", 1, 0)
	entries := []Entry{
		{UserID: u.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
		{UserID: u.ID.Hex(), Amount: -50, Reason: ReasonUnclaimedItem},
		{UserID: u.ID.Hex(), Amount: 50, Reason: ReasonClaimedItem},
	}

	agg := NewAggregator(&fakeUsers{users: []users.User{u}}, &fakeEntries{entries: entries})
	board, err := agg.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50, board[0].TotalKarma)
}

func TestComputeLeaderboard_TiesKeepInputOrder(t *testing.T) {
	u1 := newUser("first", 0, 0)
	u2 := newUser("second", 0, 0)

	entries := []Entry{
		{UserID: u1.ID.Hex(), Amount: 50},
		{UserID: u2.ID.Hex(), Amount: 50},
	}

	agg := NewAggregator(&fakeUsers{users: []users.User{u1, u2}}, &fakeEntries{entries: entries})
	board, err := agg.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, "first", board[0].Username)
	require.Equal(t, "second", board[1].Username)
}

func TestComputeLeaderboard_SourceErrorsPropagate(t *testing.T) {
	agg := NewAggregator(&fakeUsers{err: errors.New("users down")}, &fakeEntries{})
	_, err := agg.ComputeLeaderboard(context.Background())
	require.Error(t, err)

	agg = NewAggregator(&fakeUsers{}, &fakeEntries{err: errors.New("ledger down")})
	_, err = agg.ComputeLeaderboard(context.Background())
	require.Error(t, err)
}
