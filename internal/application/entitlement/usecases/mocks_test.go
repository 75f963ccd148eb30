package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/doramashorts/backend/internal/domain/purchase"
	purchasevo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/domain/subscription"
	subvo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/domain/video"
)

type mockSubscriptionRepo struct {
	mock.Mock
	subscription.Repository
}

func (m *mockSubscriptionRepo) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

type mockPurchaseRepo struct {
	mock.Mock
	purchase.Repository
}

func (m *mockPurchaseRepo) ListByUserID(ctx context.Context, userID uint) ([]*purchase.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchase.Purchase), args.Error(1)
}

type mockVideoRepo struct {
	mock.Mock
	video.Repository
}

func (m *mockVideoRepo) GetBySID(ctx context.Context, sid string) (*video.Video, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func buildActiveSub(id, userID uint, expiresAt time.Time) *subscription.Subscription {
	startsAt := expiresAt.AddDate(0, 0, -30)
	s, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:               id,
		SID:              "sub_active00000" + string(rune('a'+id)),
		UserID:           userID,
		Status:           subvo.StatusActive,
		StartsAt:         &startsAt,
		ExpiresAt:        &expiresAt,
		ActivationSource: subvo.ActivationSourceAdmin,
		Version:          2,
		CreatedAt:        startsAt,
		UpdatedAt:        startsAt,
	})
	if err != nil {
		panic(err)
	}
	return s
}

func buildPurchase(id, userID, videoID uint, status purchasevo.PurchaseStatus) *purchase.Purchase {
	p, err := purchase.ReconstructPurchase(purchase.ReconstructParams{
		ID:          id,
		SID:         "pur_test0000000" + string(rune('a'+id)),
		UserID:      userID,
		VideoID:     videoID,
		Status:      status,
		AmountCents: 990,
		Version:     1,
		CreatedAt:   testNow.Add(-time.Hour),
		UpdatedAt:   testNow.Add(-time.Hour),
	})
	if err != nil {
		panic(err)
	}
	return p
}

func buildVideo(id uint, sid string, priceCents int64) *video.Video {
	v, err := video.ReconstructVideo(video.ReconstructParams{
		ID:         id,
		SID:        sid,
		Title:      "Amor em Seul",
		VideoURL:   "https://cdn.example.com/" + sid + ".m3u8",
		IsActive:   true,
		PriceCents: priceCents,
		CreatedAt:  testNow.Add(-48 * time.Hour),
		UpdatedAt:  testNow.Add(-48 * time.Hour),
	})
	if err != nil {
		panic(err)
	}
	return v
}
