package purchase

import (
	"context"

	vo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
)

// Repository returns nil, nil from lookups that match nothing.
type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	GetBySID(ctx context.Context, sid string) (*Purchase, error)
	// FindOpen returns the user's pending or paid purchase for a video,
	// preferring paid.
	FindOpen(ctx context.Context, userID, videoID uint) (*Purchase, error)
	// ListByUserID returns every purchase of the user, newest first.
	ListByUserID(ctx context.Context, userID uint) ([]*Purchase, error)
	// TransitionFrom persists p only if the stored status still equals from.
	// A unique violation on paid_key surfaces as ErrAlreadyPaid.
	TransitionFrom(ctx context.Context, p *Purchase, from vo.PurchaseStatus) (bool, error)
}
