package usecases

import (
	"context"

	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/domain/checkout"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type SubscriptionActivator interface {
	Execute(ctx context.Context, userID uint) (*subscriptionUsecases.ActivateFromCheckoutResult, error)
}

type PurchasePayer interface {
	Execute(ctx context.Context, cmd purchaseUsecases.MarkPurchasePaidCommand) (*purchaseUsecases.MarkPurchasePaidResult, error)
}

type HandleCheckoutMessageCommand struct {
	UserID      uint
	Origin      string
	Data        string
	PurchaseSID string
	// RelayOrigin is the Origin header of the relaying request.
	RelayOrigin string
}

// HandleCheckoutMessageResult is deliberately thin: a dropped message and an
// unknown one look the same to the caller.
type HandleCheckoutMessageResult struct {
	Accepted      bool `json:"accepted"`
	ResyncAfterMS int  `json:"resync_after_ms,omitempty"`
}

// HandleCheckoutMessageUseCase turns a trusted success signal from the
// embedded checkout into a lifecycle transition.
type HandleCheckoutMessageUseCase struct {
	policy        checkout.Policy
	activator     SubscriptionActivator
	payer         PurchasePayer
	resyncAfterMS int
	logger        logger.Interface
}

func NewHandleCheckoutMessageUseCase(
	policy checkout.Policy,
	activator SubscriptionActivator,
	payer PurchasePayer,
	resyncAfterMS int,
	logger logger.Interface,
) *HandleCheckoutMessageUseCase {
	return &HandleCheckoutMessageUseCase{
		policy:        policy,
		activator:     activator,
		payer:         payer,
		resyncAfterMS: resyncAfterMS,
		logger:        logger,
	}
}

func (uc *HandleCheckoutMessageUseCase) Execute(ctx context.Context, cmd HandleCheckoutMessageCommand) (*HandleCheckoutMessageResult, error) {
	signal := uc.policy.Classify(checkout.Message{
		Origin:      cmd.Origin,
		Data:        cmd.Data,
		PurchaseSID: cmd.PurchaseSID,
	}, cmd.RelayOrigin)

	if signal.Kind == checkout.SignalIgnored {
		uc.logger.Debugw("checkout message dropped",
			"reason", signal.Dropped,
			"origin", cmd.Origin,
			"relay_origin", cmd.RelayOrigin,
		)
		return &HandleCheckoutMessageResult{}, nil
	}

	switch signal.Kind {
	case checkout.SignalPurchasePaid:
		if _, err := uc.payer.Execute(ctx, purchaseUsecases.MarkPurchasePaidCommand{
			UserID:      cmd.UserID,
			PurchaseSID: signal.PurchaseSID,
		}); err != nil {
			return nil, err
		}
	case checkout.SignalSubscriptionPaid:
		if _, err := uc.activator.Execute(ctx, cmd.UserID); err != nil {
			return nil, err
		}
	}

	return &HandleCheckoutMessageResult{Accepted: true, ResyncAfterMS: uc.resyncAfterMS}, nil
}
