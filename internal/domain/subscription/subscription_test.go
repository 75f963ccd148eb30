package subscription

import (
	"strings"
	"testing"
	"time"

	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// --- helpers ---

func newPendingSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(10, Evidence{WhatsAppNumber: "11937587626"}, testNow)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func reconstructSubscription(t *testing.T, status vo.SubscriptionStatus, expiresAt *time.Time) *Subscription {
	t.Helper()
	sub, err := ReconstructSubscription(ReconstructParams{
		ID:        1,
		SID:       "sub_test123",
		UserID:    10,
		Status:    status,
		ExpiresAt: expiresAt,
		Version:   1,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	})
	require.NoError(t, err)
	return sub
}

func timePtr(t time.Time) *time.Time { return &t }

// =====================================================================
// TestNewSubscription_*
// =====================================================================

func TestNewSubscription_ValidInput(t *testing.T) {
	sub := newPendingSubscription(t)

	assert.True(t, strings.HasPrefix(sub.SID(), "sub_"))
	assert.Equal(t, uint(10), sub.UserID())
	assert.Equal(t, vo.StatusPending, sub.Status())
	assert.Nil(t, sub.StartsAt())
	assert.Nil(t, sub.ExpiresAt())
	assert.Equal(t, "11937587626", sub.WhatsAppNumber())
	assert.Equal(t, 1, sub.Version())
}

func TestNewSubscription_RequiresUser(t *testing.T) {
	sub, err := NewSubscription(0, Evidence{}, testNow)
	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestReconstructSubscription_RejectsUnknownStatus(t *testing.T) {
	_, err := ReconstructSubscription(ReconstructParams{
		ID: 1, SID: "sub_x", UserID: 1, Status: "trialing",
	})
	assert.Error(t, err)
}

// =====================================================================
// Transitions
// =====================================================================

func TestApprove_SetsThirtyDayWindowAndApprover(t *testing.T) {
	sub := newPendingSubscription(t)

	require.NoError(t, sub.Approve(99, 30, testNow))

	assert.Equal(t, vo.StatusActive, sub.Status())
	require.NotNil(t, sub.StartsAt())
	require.NotNil(t, sub.ExpiresAt())
	assert.Equal(t, testNow, *sub.StartsAt())
	assert.Equal(t, testNow.Add(30*24*time.Hour), *sub.ExpiresAt())
	require.NotNil(t, sub.ApprovedBy())
	assert.Equal(t, uint(99), *sub.ApprovedBy())
	assert.Equal(t, testNow, *sub.ApprovedAt())
	assert.Equal(t, vo.ActivationSourceAdmin, sub.ActivationSource())
}

func TestApprove_SecondCallFails(t *testing.T) {
	sub := newPendingSubscription(t)
	require.NoError(t, sub.Approve(99, 30, testNow))
	expires := *sub.ExpiresAt()

	err := sub.Approve(99, 30, testNow.Add(time.Hour))

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, expires, *sub.ExpiresAt(), "expiry must not be extended twice")
}

func TestApprove_RequiresApprover(t *testing.T) {
	sub := newPendingSubscription(t)
	assert.Error(t, sub.Approve(0, 30, testNow))
	assert.Equal(t, vo.StatusPending, sub.Status())
}

func TestActivateFromCheckout_UsesConfiguredPeriod(t *testing.T) {
	sub := newPendingSubscription(t)

	require.NoError(t, sub.ActivateFromCheckout(45, testNow))

	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, testNow.Add(45*24*time.Hour), *sub.ExpiresAt())
	assert.Nil(t, sub.ApprovedBy())
	assert.Equal(t, vo.ActivationSourceCheckout, sub.ActivationSource())
}

func TestActivateFromCheckout_RejectsNonPositivePeriod(t *testing.T) {
	sub := newPendingSubscription(t)
	assert.ErrorIs(t, sub.ActivateFromCheckout(0, testNow), ErrInvalidPeriod)
}

func TestReject_FromPending(t *testing.T) {
	sub := newPendingSubscription(t)

	require.NoError(t, sub.Reject(testNow))

	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.Nil(t, sub.ExpiresAt())
	assert.Nil(t, sub.NonTerminalKey())
}

func TestReject_FromActiveFails(t *testing.T) {
	sub := reconstructSubscription(t, vo.StatusActive, timePtr(testNow.Add(time.Hour)))
	assert.ErrorIs(t, sub.Reject(testNow), ErrInvalidStatusTransition)
}

// =====================================================================
// Lazy expiry
// =====================================================================

func TestEffectiveStatus_LazyExpiry(t *testing.T) {
	t.Run("one second past expiry reads expired", func(t *testing.T) {
		sub := reconstructSubscription(t, vo.StatusActive, timePtr(testNow.Add(-time.Second)))
		assert.Equal(t, vo.StatusExpired, sub.EffectiveStatus(testNow))
		assert.False(t, sub.GrantsAccess(testNow))
		assert.Equal(t, vo.StatusActive, sub.Status(), "read must not write")
	})

	t.Run("expiry equal to now is expired", func(t *testing.T) {
		sub := reconstructSubscription(t, vo.StatusActive, timePtr(testNow))
		assert.False(t, sub.GrantsAccess(testNow))
	})

	t.Run("future expiry grants access", func(t *testing.T) {
		sub := reconstructSubscription(t, vo.StatusActive, timePtr(testNow.Add(time.Second)))
		assert.True(t, sub.GrantsAccess(testNow))
		assert.Equal(t, vo.StatusActive, sub.EffectiveStatus(testNow))
	})

	t.Run("active without expiry grants nothing", func(t *testing.T) {
		sub := reconstructSubscription(t, vo.StatusActive, nil)
		assert.False(t, sub.GrantsAccess(testNow))
	})
}

func TestMarkAsExpired(t *testing.T) {
	lapsed := reconstructSubscription(t, vo.StatusActive, timePtr(testNow.Add(-time.Minute)))
	require.NoError(t, lapsed.MarkAsExpired(testNow))
	assert.Equal(t, vo.StatusExpired, lapsed.Status())
	assert.Nil(t, lapsed.NonTerminalKey())

	current := reconstructSubscription(t, vo.StatusActive, timePtr(testNow.Add(time.Minute)))
	assert.Error(t, current.MarkAsExpired(testNow))
}

// =====================================================================
// Evidence and uniqueness key
// =====================================================================

func TestMergeEvidence(t *testing.T) {
	sub := newPendingSubscription(t)

	changed, err := sub.MergeEvidence(Evidence{PaymentProofURL: "https://img/proof.png"}, testNow)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "11937587626", sub.WhatsAppNumber(), "empty fields keep stored value")
	assert.Equal(t, "https://img/proof.png", sub.PaymentProofURL())

	changed, err = sub.MergeEvidence(Evidence{PaymentProofURL: "https://img/proof.png"}, testNow)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMergeEvidence_RejectedWhenNotPending(t *testing.T) {
	sub := reconstructSubscription(t, vo.StatusCancelled, nil)
	_, err := sub.MergeEvidence(Evidence{WhatsAppNumber: "1"}, testNow)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestNonTerminalKey(t *testing.T) {
	pending := newPendingSubscription(t)
	require.NotNil(t, pending.NonTerminalKey())
	assert.Equal(t, uint(10), *pending.NonTerminalKey())

	expired := reconstructSubscription(t, vo.StatusExpired, nil)
	assert.Nil(t, expired.NonTerminalKey())
}
