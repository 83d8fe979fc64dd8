package claims

import (
	"context"
	"fmt"

	"github.com/xyz-asif/foundly/internal/features/items"
	"github.com/xyz-asif/foundly/internal/features/karma"
	"github.com/xyz-asif/foundly/internal/features/users"
	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

// ItemStore reads and claims found items.
type ItemStore interface {
	GetFoundItem(ctx context.Context, id string) (*items.Item, error)
	UpdateClaim(ctx context.Context, id string, claimedBy *string) (*items.Item, error)
}

// KarmaLedger appends award and penalty entries.
type KarmaLedger interface {
	Append(ctx context.Context, entry *karma.Entry) error
}

// UserStats reads users and maintains the returned-items counter.
type UserStats interface {
	GetByID(ctx context.Context, id string) (*users.User, error)
	IncrementReturnedItems(ctx context.Context, userID string, delta int) error
}

// TxRunner executes fn atomically; every store call made with the ctx it
// passes commits or aborts as one unit.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates claim transitions on found items. A transition touches
// three places at once: the item's claim fields, the finder's karma ledger,
// and the finder's returned-items counter. All three commit or none do.
type Service struct {
	items  ItemStore
	ledger KarmaLedger
	stats  UserStats
	tx     TxRunner
}

func NewService(items ItemStore, ledger KarmaLedger, stats UserStats, tx TxRunner) *Service {
	return &Service{items: items, ledger: ledger, stats: stats, tx: tx}
}

// SetClaim moves a found item into or out of the claimed state.
//
// claimedBy carries the claimant's user ID, or nil to release the claim.
// Only the item's owner or an admin may record a transition, and the owner
// can never be the claimant. Setting the same state that is already stored
// is a no-op: no karma moves and no counters change. Moving between two
// distinct claimants updates the item only; the finder was already awarded
// for the original claim.
func (s *Service) SetClaim(ctx context.Context, itemID string, claimedBy *string, actor Actor) (*items.Item, error) {
	var updated *items.Item

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetFoundItem(txCtx, itemID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin && actor.ID != item.OwnerID {
			return apperrors.ErrForbidden
		}

		if claimedBy != nil && *claimedBy == item.OwnerID {
			return apperrors.ErrSelfClaim
		}

		if sameClaimant(item.ClaimedBy, claimedBy) {
			updated = item
			return nil
		}

		wasClaimed := item.ClaimedBy != nil

		updated, err = s.items.UpdateClaim(txCtx, itemID, claimedBy)
		if err != nil {
			return err
		}

		switch {
		case !wasClaimed && claimedBy != nil:
			return s.settle(txCtx, item, karma.Award, karma.ReasonClaimedItem, 1)
		case wasClaimed && claimedBy == nil:
			return s.settle(txCtx, item, -karma.Award, karma.ReasonUnclaimedItem, -1)
		}
		// Claimant-to-claimant move: the award already happened.
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// settle records the karma entry and adjusts the finder's returned-items
// counter for one claim transition.
func (s *Service) settle(ctx context.Context, item *items.Item, amount int, reason string, statDelta int) error {
	owner, err := s.stats.GetByID(ctx, item.OwnerID)
	if err != nil {
		return err
	}

	detail := fmt.Sprintf("Returned %s to its owner", item.ItemName)
	if amount < 0 {
		detail = fmt.Sprintf("Claim on %s was released", item.ItemName)
	}

	entry := &karma.Entry{
		UserID:   item.OwnerID,
		Amount:   amount,
		Reason:   reason,
		Detail:   detail,
		Username: owner.Username,
		Avatar:   owner.Avatar,
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return err
	}

	return s.stats.IncrementReturnedItems(ctx, item.OwnerID, statDelta)
}

func sameClaimant(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
