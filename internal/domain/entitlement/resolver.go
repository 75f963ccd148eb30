// Package entitlement computes what a user may watch from their subscription
// and purchase records. Both business models resolve through Resolve so the
// gate never needs to know which one applies.
package entitlement

import (
	"time"

	"github.com/doramashorts/backend/internal/domain/purchase"
	"github.com/doramashorts/backend/internal/domain/subscription"
	subvo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
)

// Kind discriminates Result.
type Kind string

const (
	KindNone               Kind = "none"
	KindSubscriptionActive Kind = "subscription_active"
	KindVideoUnlocked      Kind = "video_unlocked"
)

// Result is the capability a user holds at an instant. SubscriptionSID and
// ExpiresAt are set for KindSubscriptionActive, VideoID for KindVideoUnlocked.
type Result struct {
	Kind            Kind
	SubscriptionSID string
	ExpiresAt       time.Time
	VideoID         uint
}

var NoEntitlement = Result{Kind: KindNone}

func (r Result) Entitled() bool {
	return r.Kind != KindNone
}

// Resolve returns the user's entitlement for videoID. Records belonging to
// other users are ignored. videoID 0 asks about the subscription only.
func Resolve(userID uint, subs []*subscription.Subscription, purchases []*purchase.Purchase, videoID uint, now time.Time) Result {
	if userID == 0 {
		return NoEntitlement
	}

	if latest := latestActive(userID, subs); latest != nil && latest.GrantsAccess(now) {
		return Result{
			Kind:            KindSubscriptionActive,
			SubscriptionSID: latest.SID(),
			ExpiresAt:       *latest.ExpiresAt(),
		}
	}

	if videoID == 0 {
		return NoEntitlement
	}
	for _, p := range purchases {
		if p.UserID() == userID && p.VideoID() == videoID && p.Status().IsPaid() {
			return Result{Kind: KindVideoUnlocked, VideoID: videoID}
		}
	}

	return NoEntitlement
}

// latestActive picks the most recently created record with stored status
// active. A lapsed pick is not replaced by an older one.
func latestActive(userID uint, subs []*subscription.Subscription) *subscription.Subscription {
	var latest *subscription.Subscription
	for _, s := range subs {
		if s.UserID() != userID || s.Status() != subvo.StatusActive {
			continue
		}
		if latest == nil || s.CreatedAt().After(latest.CreatedAt()) ||
			(s.CreatedAt().Equal(latest.CreatedAt()) && s.ID() > latest.ID()) {
			latest = s
		}
	}
	return latest
}
