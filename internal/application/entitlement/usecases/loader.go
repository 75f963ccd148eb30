package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/purchase"
	"github.com/doramashorts/backend/internal/domain/subscription"
)

// Snapshot holds one user's records so several videos can be resolved from a
// single read.
type Snapshot struct {
	UserID        uint
	Subscriptions []*subscription.Subscription
	Purchases     []*purchase.Purchase
}

// For resolves the snapshot against videoID at now.
func (s *Snapshot) For(videoID uint, now time.Time) entitlement.Result {
	if s == nil {
		return entitlement.NoEntitlement
	}
	return entitlement.Resolve(s.UserID, s.Subscriptions, s.Purchases, videoID, now)
}

// Loader reads the records the resolver needs. It always reads the store, so
// a resync after a transition sees the new state.
type Loader struct {
	subscriptionRepo subscription.Repository
	purchaseRepo     purchase.Repository
}

func NewLoader(subscriptionRepo subscription.Repository, purchaseRepo purchase.Repository) *Loader {
	return &Loader{subscriptionRepo: subscriptionRepo, purchaseRepo: purchaseRepo}
}

// Load returns a nil snapshot for anonymous callers.
func (l *Loader) Load(ctx context.Context, userID uint) (*Snapshot, error) {
	if userID == 0 {
		return nil, nil
	}

	subs, err := l.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	purchases, err := l.purchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	return &Snapshot{UserID: userID, Subscriptions: subs, Purchases: purchases}, nil
}
