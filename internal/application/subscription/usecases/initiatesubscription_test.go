package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/services/markdown"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newInitiateUC(t *testing.T, repo *fakeSubscriptionRepo) *InitiateSubscriptionUseCase {
	t.Helper()
	uc := NewInitiateSubscriptionUseCase(repo, passthroughTx{}, Config{}, logger.NewNopLogger())
	uc.now = fixedClock(testNow)
	return uc
}

// =====================================================================
// Creation and reuse
// =====================================================================

func TestInitiateSubscription_CreatesPending(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := newInitiateUC(t, repo)

	result, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{
		UserID:         7,
		WhatsAppNumber: " 11937587626 ",
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.False(t, result.AlreadyActive)
	assert.Equal(t, "pending", result.Subscription.Status)
	assert.Equal(t, "11937587626", result.Subscription.WhatsAppNumber)
	assert.Nil(t, result.Subscription.ExpiresAt)
	assert.Equal(t, 1, repo.count(7, vo.StatusPending))
}

func TestInitiateSubscription_ReusesPendingAndMergesEvidence(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := newInitiateUC(t, repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, InitiateSubscriptionCommand{UserID: 7, WhatsAppNumber: "11937587626"})
	require.NoError(t, err)

	second, err := uc.Execute(ctx, InitiateSubscriptionCommand{UserID: 7, PaymentProofURL: "https://img/proof.png"})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.Subscription.SID, second.Subscription.SID)
	assert.Equal(t, "11937587626", second.Subscription.WhatsAppNumber)
	assert.Equal(t, "https://img/proof.png", second.Subscription.PaymentProofURL)
	assert.Equal(t, 1, repo.count(7, vo.StatusPending))
}

func TestInitiateSubscription_EvidenceKeepsQueryStringAndStripsMarkup(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := newInitiateUC(t, repo)
	uc.SetSanitizer(markdown.NewMarkdownService())

	proof := "https://drive.example.com/view?id=42&sig=abc"
	result, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{
		UserID:          7,
		WhatsAppNumber:  "<b>11 93758-7626</b> & cia",
		PaymentProofURL: " " + proof + " ",
	})

	require.NoError(t, err)
	assert.Equal(t, proof, result.Subscription.PaymentProofURL)
	assert.Equal(t, "11 93758-7626 & cia", result.Subscription.WhatsAppNumber)

	stored, err := repo.GetNonTerminalByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, proof, stored.PaymentProofURL())
}

func TestInitiateSubscription_ActiveBlocksCreation(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	expires := testNow.Add(10 * 24 * time.Hour)
	active := repo.seed(subscription.ReconstructParams{
		UserID: 7, Status: vo.StatusActive, ExpiresAt: &expires, CreatedAt: testNow.Add(-20 * 24 * time.Hour),
	})
	uc := newInitiateUC(t, repo)

	result, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})

	require.NoError(t, err)
	assert.True(t, result.AlreadyActive)
	assert.False(t, result.Created)
	assert.Equal(t, active.SID(), result.Subscription.SID)
	assert.Equal(t, 0, repo.count(7, vo.StatusPending))
}

func TestInitiateSubscription_LapsedActiveIsExpiredThenReplaced(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	expired := testNow.Add(-time.Second)
	lapsed := repo.seed(subscription.ReconstructParams{
		UserID: 7, Status: vo.StatusActive, ExpiresAt: &expired, CreatedAt: testNow.Add(-31 * 24 * time.Hour),
	})
	publisher := new(mockPublisher)
	publisher.On("PublishEntitlementChanged", mock.Anything, mock.MatchedBy(func(e entitlement.ChangedEvent) bool {
		return e.UserID == 7 && e.Reason == entitlement.ChangeSubscriptionExpired
	})).Return(nil).Once()

	uc := newInitiateUC(t, repo)
	uc.SetEntitlementPublisher(publisher)

	result, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEqual(t, lapsed.SID(), result.Subscription.SID)
	assert.Equal(t, 1, repo.count(7, vo.StatusExpired))
	assert.Equal(t, 1, repo.count(7, vo.StatusPending))
	publisher.AssertExpectations(t)
}

func TestInitiateSubscription_AfterRejectCreatesNewRecord(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.seed(subscription.ReconstructParams{UserID: 7, Status: vo.StatusCancelled, CreatedAt: testNow.Add(-time.Hour)})
	uc := newInitiateUC(t, repo)

	result, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, 1, repo.count(7, vo.StatusCancelled))
}

// =====================================================================
// Errors and guards
// =====================================================================

func TestInitiateSubscription_Unauthenticated(t *testing.T) {
	uc := newInitiateUC(t, newFakeSubscriptionRepo())

	_, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{})

	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestInitiateSubscription_StoreUnavailable(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.failAll = errStoreDown
	uc := newInitiateUC(t, repo)

	_, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})

	assert.True(t, apperrors.IsUnavailableError(err))
}

func TestInitiateSubscription_InFlightGuardRejectsConcurrentCall(t *testing.T) {
	guard := newFakeGuard()
	guard.held["subscription:initiate:7"] = true
	uc := newInitiateUC(t, newFakeSubscriptionRepo())
	uc.SetInFlightGuard(guard)

	_, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestInitiateSubscription_GuardReleasedAfterCall(t *testing.T) {
	guard := newFakeGuard()
	uc := newInitiateUC(t, newFakeSubscriptionRepo())
	uc.SetInFlightGuard(guard)

	_, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})
	require.NoError(t, err)

	assert.Empty(t, guard.held)
}

func TestInitiateSubscription_GuardOutageFallsBackToStore(t *testing.T) {
	guard := newFakeGuard()
	guard.err = errStoreDown
	repo := newFakeSubscriptionRepo()
	uc := newInitiateUC(t, repo)
	uc.SetInFlightGuard(guard)

	result, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})

	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestInitiateSubscription_ConcurrentCallsKeepOneNonTerminal(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := newInitiateUC(t, repo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.count(7, vo.StatusPending))
}

func TestInitiateSubscription_NotifiesAdminsOnCreate(t *testing.T) {
	notifier := &mockNotifier{done: make(chan struct{})}
	notifier.On("NotifyPendingSubscription", mock.Anything, mock.MatchedBy(func(n PendingSubscriptionNotice) bool {
		return n.UserEmail == "fan@example.com" && n.WhatsAppNumber == "11937587626"
	})).Return(nil).Once()

	uc := newInitiateUC(t, newFakeSubscriptionRepo())
	uc.SetAdminNotifier(notifier, staticEmails{7: "fan@example.com"})

	_, err := uc.Execute(context.Background(), InitiateSubscriptionCommand{UserID: 7, WhatsAppNumber: "11937587626"})
	require.NoError(t, err)

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("admin notification not sent")
	}
	notifier.AssertExpectations(t)
}
