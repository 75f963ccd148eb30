package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/purchase"
	purchasevo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/domain/subscription"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type playbackFixture struct {
	subs      *mockSubscriptionRepo
	purchases *mockPurchaseRepo
	videos    *mockVideoRepo
	uc        *CheckPlaybackUseCase
}

func newPlaybackFixture(t *testing.T) *playbackFixture {
	t.Helper()
	f := &playbackFixture{
		subs:      new(mockSubscriptionRepo),
		purchases: new(mockPurchaseRepo),
		videos:    new(mockVideoRepo),
	}
	f.uc = NewCheckPlaybackUseCase(f.videos, NewLoader(f.subs, f.purchases), logger.NewNopLogger())
	f.uc.now = fixedClock(testNow)
	return f
}

// =====================================================================
// Access granted
// =====================================================================

func TestCheckPlayback_ActiveSubscriptionUnlocksFlatRateVideo(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_flat").Return(buildVideo(1, "vid_flat", 0), nil)
	f.subs.On("ListByUserID", mock.Anything, uint(7)).
		Return([]*subscription.Subscription{buildActiveSub(1, 7, testNow.Add(24*time.Hour))}, nil)
	f.purchases.On("ListByUserID", mock.Anything, uint(7)).Return([]*purchase.Purchase{}, nil)

	result, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_flat"})

	require.NoError(t, err)
	assert.False(t, result.Locked)
	assert.Equal(t, entitlement.KindSubscriptionActive, result.Entitlement)
	assert.Equal(t, "https://cdn.example.com/vid_flat.m3u8", result.VideoURL)
}

func TestCheckPlayback_PaidPurchaseUnlocksOnlyItsVideo(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_paid").Return(buildVideo(2, "vid_paid", 990), nil)
	f.videos.On("GetBySID", mock.Anything, "vid_other").Return(buildVideo(3, "vid_other", 990), nil)
	f.subs.On("ListByUserID", mock.Anything, uint(7)).Return([]*subscription.Subscription{}, nil)
	f.purchases.On("ListByUserID", mock.Anything, uint(7)).
		Return([]*purchase.Purchase{buildPurchase(1, 7, 2, purchasevo.PurchaseStatusPaid)}, nil)

	unlocked, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_paid"})
	require.NoError(t, err)
	assert.False(t, unlocked.Locked)
	assert.Equal(t, entitlement.KindVideoUnlocked, unlocked.Entitlement)

	other, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_other"})
	require.NoError(t, err)
	assert.True(t, other.Locked)
	assert.Equal(t, entitlement.LockReasonPurchaseRequired, other.Reason)
	assert.Empty(t, other.VideoURL)
}

// =====================================================================
// Access denied
// =====================================================================

func TestCheckPlayback_LapsedSubscriptionIsLocked(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_flat").Return(buildVideo(1, "vid_flat", 0), nil)
	f.subs.On("ListByUserID", mock.Anything, uint(7)).
		Return([]*subscription.Subscription{buildActiveSub(1, 7, testNow)}, nil)
	f.purchases.On("ListByUserID", mock.Anything, uint(7)).Return([]*purchase.Purchase{}, nil)

	result, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_flat"})

	require.NoError(t, err)
	assert.True(t, result.Locked)
	assert.Equal(t, entitlement.LockReasonSubscriptionRequired, result.Reason)
	assert.Empty(t, result.VideoURL)
}

func TestCheckPlayback_PendingPurchaseIsLocked(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_paid").Return(buildVideo(2, "vid_paid", 990), nil)
	f.subs.On("ListByUserID", mock.Anything, uint(7)).Return([]*subscription.Subscription{}, nil)
	f.purchases.On("ListByUserID", mock.Anything, uint(7)).
		Return([]*purchase.Purchase{buildPurchase(1, 7, 2, purchasevo.PurchaseStatusPending)}, nil)

	result, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_paid"})

	require.NoError(t, err)
	assert.True(t, result.Locked)
}

func TestCheckPlayback_StoreErrorFailsClosed(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_flat").Return(buildVideo(1, "vid_flat", 0), nil)
	f.subs.On("ListByUserID", mock.Anything, uint(7)).Return(nil, errors.New("connection reset"))

	result, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_flat"})

	require.NoError(t, err)
	assert.True(t, result.Locked)
	assert.Equal(t, entitlement.LockReasonUnavailable, result.Reason)
	assert.Empty(t, result.VideoURL)
	f.purchases.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything)
}

func TestCheckPlayback_Anonymous(t *testing.T) {
	f := newPlaybackFixture(t)

	_, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{VideoSID: "vid_flat"})

	assert.True(t, apperrors.IsUnauthorizedError(err))
	f.videos.AssertNotCalled(t, "GetBySID", mock.Anything, mock.Anything)
}

func TestCheckPlayback_UnknownVideo(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_missing").Return(nil, nil)

	_, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_missing"})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCheckPlayback_VideoStoreDown(t *testing.T) {
	f := newPlaybackFixture(t)
	f.videos.On("GetBySID", mock.Anything, "vid_flat").Return(nil, errors.New("timeout"))

	_, err := f.uc.Execute(context.Background(), CheckPlaybackCommand{UserID: 7, VideoSID: "vid_flat"})

	assert.True(t, apperrors.IsUnavailableError(err))
}

// =====================================================================
// GetEntitlement
// =====================================================================

func TestGetEntitlement_ReportsActiveSubscription(t *testing.T) {
	subs := new(mockSubscriptionRepo)
	purchases := new(mockPurchaseRepo)
	expiresAt := testNow.Add(72 * time.Hour)
	subs.On("ListByUserID", mock.Anything, uint(7)).
		Return([]*subscription.Subscription{buildActiveSub(1, 7, expiresAt)}, nil)
	purchases.On("ListByUserID", mock.Anything, uint(7)).Return([]*purchase.Purchase{
		buildPurchase(1, 7, 2, purchasevo.PurchaseStatusPaid),
		buildPurchase(2, 7, 3, purchasevo.PurchaseStatusPending),
	}, nil)

	uc := NewGetEntitlementUseCase(NewLoader(subs, purchases), logger.NewNopLogger())
	uc.now = fixedClock(testNow)

	out, err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, out.Entitled)
	assert.Equal(t, entitlement.KindSubscriptionActive, out.Kind)
	require.NotNil(t, out.ExpiresAt)
	assert.Equal(t, expiresAt, *out.ExpiresAt)
	assert.Equal(t, 1, out.PaidVideoCount)
}

func TestGetEntitlement_StoreDown(t *testing.T) {
	subs := new(mockSubscriptionRepo)
	subs.On("ListByUserID", mock.Anything, uint(7)).Return(nil, errors.New("timeout"))
	uc := NewGetEntitlementUseCase(NewLoader(subs, new(mockPurchaseRepo)), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 7)

	assert.True(t, apperrors.IsUnavailableError(err))
}
