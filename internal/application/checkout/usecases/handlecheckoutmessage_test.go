package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/domain/checkout"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

const (
	trustedOrigin = "https://checkout.pay.example"
	hostOrigin    = "https://doramas.example"
)

type mockActivator struct {
	mock.Mock
}

func (m *mockActivator) Execute(ctx context.Context, userID uint) (*subscriptionUsecases.ActivateFromCheckoutResult, error) {
	args := m.Called(ctx, userID)
	result, _ := args.Get(0).(*subscriptionUsecases.ActivateFromCheckoutResult)
	return result, args.Error(1)
}

type mockPayer struct {
	mock.Mock
}

func (m *mockPayer) Execute(ctx context.Context, cmd purchaseUsecases.MarkPurchasePaidCommand) (*purchaseUsecases.MarkPurchasePaidResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(*purchaseUsecases.MarkPurchasePaidResult)
	return result, args.Error(1)
}

func newUC(activator *mockActivator, payer *mockPayer) *HandleCheckoutMessageUseCase {
	policy := checkout.Policy{
		CheckoutOrigin: trustedOrigin,
		Sentinel:       "payment_success",
		HostOrigins:    []string{hostOrigin},
	}
	return NewHandleCheckoutMessageUseCase(policy, activator, payer, 1500, logger.NewNopLogger())
}

func TestHandleCheckoutMessage_TrustedSuccessActivates(t *testing.T) {
	activator := new(mockActivator)
	activator.On("Execute", mock.Anything, uint(7)).
		Return(&subscriptionUsecases.ActivateFromCheckoutResult{Activated: true}, nil).Once()
	uc := newUC(activator, new(mockPayer))

	result, err := uc.Execute(context.Background(), HandleCheckoutMessageCommand{
		UserID: 7, Origin: trustedOrigin, Data: "payment_success", RelayOrigin: hostOrigin,
	})

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, 1500, result.ResyncAfterMS)
	activator.AssertExpectations(t)
}

func TestHandleCheckoutMessage_PurchaseMessageMarksPaid(t *testing.T) {
	payer := new(mockPayer)
	payer.On("Execute", mock.Anything, purchaseUsecases.MarkPurchasePaidCommand{UserID: 7, PurchaseSID: "pur_abc"}).
		Return(&purchaseUsecases.MarkPurchasePaidResult{Applied: true}, nil).Once()
	activator := new(mockActivator)
	uc := newUC(activator, payer)

	result, err := uc.Execute(context.Background(), HandleCheckoutMessageCommand{
		UserID: 7, Origin: trustedOrigin, Data: "payment_success", PurchaseSID: "pur_abc", RelayOrigin: hostOrigin,
	})

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	payer.AssertExpectations(t)
	activator.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandleCheckoutMessage_UntrustedNeverChangesState(t *testing.T) {
	tests := []struct {
		name string
		cmd  HandleCheckoutMessageCommand
	}{
		{"foreign origin", HandleCheckoutMessageCommand{UserID: 7, Origin: "https://evil.example", Data: "payment_success"}},
		{"foreign relay", HandleCheckoutMessageCommand{UserID: 7, Origin: trustedOrigin, Data: "payment_success", RelayOrigin: "https://evil.example"}},
		{"missing relay origin", HandleCheckoutMessageCommand{UserID: 7, Origin: trustedOrigin, Data: "payment_success"}},
		{"unknown payload", HandleCheckoutMessageCommand{UserID: 7, Origin: trustedOrigin, Data: "payment_failed", RelayOrigin: hostOrigin}},
		{"empty message", HandleCheckoutMessageCommand{UserID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activator := new(mockActivator)
			payer := new(mockPayer)
			uc := newUC(activator, payer)

			result, err := uc.Execute(context.Background(), tt.cmd)

			require.NoError(t, err)
			assert.False(t, result.Accepted)
			assert.Zero(t, result.ResyncAfterMS)
			activator.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			payer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleCheckoutMessage_StoreFailureSurfaces(t *testing.T) {
	activator := new(mockActivator)
	activator.On("Execute", mock.Anything, uint(7)).
		Return(nil, apperrors.NewServiceUnavailableError("subscription store unavailable")).Once()
	uc := newUC(activator, new(mockPayer))

	_, err := uc.Execute(context.Background(), HandleCheckoutMessageCommand{
		UserID: 7, Origin: trustedOrigin, Data: "payment_success", RelayOrigin: hostOrigin,
	})

	assert.True(t, apperrors.IsUnavailableError(err))
}
