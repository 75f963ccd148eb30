package subscription

import (
	"context"
	"time"

	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
)

// Repository is the subscription store contract. Lookups return nil, nil when
// nothing matches. Records are never deleted.
type Repository interface {
	// Create inserts a pending record. It returns ErrNonTerminalExists when the
	// user already owns a pending or active record.
	Create(ctx context.Context, sub *Subscription) error
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	// GetNonTerminalByUserID returns the user's pending or active record.
	GetNonTerminalByUserID(ctx context.Context, userID uint) (*Subscription, error)
	// ListByUserID returns the user's records, newest first.
	ListByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	// ListByStatus returns records in status, newest first.
	ListByStatus(ctx context.Context, status vo.SubscriptionStatus) ([]*Subscription, error)
	// UpdateEvidence persists merged evidence on a record still pending.
	UpdateEvidence(ctx context.Context, sub *Subscription) error
	// TransitionFrom persists sub's state only if the stored status still
	// equals from. It reports whether a row was changed.
	TransitionFrom(ctx context.Context, sub *Subscription, from vo.SubscriptionStatus) (bool, error)
	// ExpireLapsed marks every active record with expires_at <= now as expired
	// and returns the affected user IDs.
	ExpireLapsed(ctx context.Context, now time.Time) ([]uint, error)
}
