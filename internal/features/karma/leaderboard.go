package karma

import (
	"context"
	"sort"

	"github.com/xyz-asif/foundly/internal/features/users"
)

// UserSource lists all users for the leaderboard scan.
type UserSource interface {
	List(ctx context.Context) ([]users.User, error)
}

// EntrySource lists all karma ledger entries.
type EntrySource interface {
	ListAll(ctx context.Context) ([]Entry, error)
}

// Aggregator computes the karma leaderboard as a full-scan batch over users
// and the ledger. Cost is O(users + entries); there is no incremental
// variant.
type Aggregator struct {
	users   UserSource
	entries EntrySource
}

func NewAggregator(users UserSource, entries EntrySource) *Aggregator {
	return &Aggregator{users: users, entries: entries}
}

// ComputeLeaderboard sums ledger amounts per user, attaches the stored
// found/returned counters, and ranks by total karma descending. Ties keep
// the users' input order.
func (a *Aggregator) ComputeLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	allUsers, err := a.users.List(ctx)
	if err != nil {
		return nil, err
	}

	allEntries, err := a.entries.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(allUsers))
	for _, entry := range allEntries {
		totals[entry.UserID] += entry.Amount
	}

	board := make([]LeaderboardEntry, 0, len(allUsers))
	for _, user := range allUsers {
		board = append(board, LeaderboardEntry{
			UserID:        user.ID.Hex(),
			Username:      user.Username,
			Avatar:        user.Avatar,
			TotalKarma:    totals[user.ID.Hex()],
			FoundItems:    user.FoundItems,
			ReturnedItems: user.ReturnedItems,
		})
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalKarma > board[j].TotalKarma
	})

	for i := range board {
		board[i].Rank = i + 1
	}

	return board, nil
}
