package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type ActivateFromCheckoutResult struct {
	Subscription *dto.SubscriptionDTO
	Activated    bool
}

// ActivateFromCheckoutUseCase applies the automated success transition to the
// user's current pending record. Without a pending record it does nothing.
type ActivateFromCheckoutUseCase struct {
	subscriptionRepo subscription.Repository
	publisher        EntitlementPublisher // Optional
	config           Config
	now              clock
	logger           logger.Interface
}

func NewActivateFromCheckoutUseCase(
	subscriptionRepo subscription.Repository,
	config Config,
	logger logger.Interface,
) *ActivateFromCheckoutUseCase {
	return &ActivateFromCheckoutUseCase{
		subscriptionRepo: subscriptionRepo,
		config:           config.withDefaults(),
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *ActivateFromCheckoutUseCase) SetEntitlementPublisher(publisher EntitlementPublisher) {
	uc.publisher = publisher
}

func (uc *ActivateFromCheckoutUseCase) Execute(ctx context.Context, userID uint) (*ActivateFromCheckoutResult, error) {
	if userID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required")
	}

	now := uc.now()
	sub, err := uc.subscriptionRepo.GetNonTerminalByUserID(ctx, userID)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if sub == nil || sub.Status() != vo.StatusPending {
		uc.logger.Debugw("checkout success without pending subscription", "user_id", userID)
		return &ActivateFromCheckoutResult{Subscription: dto.ToSubscriptionDTO(sub, now)}, nil
	}

	if err := sub.ActivateFromCheckout(uc.config.PeriodDays, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	applied, err := uc.subscriptionRepo.TransitionFrom(ctx, sub, vo.StatusPending)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if !applied {
		current, err := uc.subscriptionRepo.GetBySID(ctx, sub.SID())
		if err != nil {
			return nil, storeUnavailable(err)
		}
		return &ActivateFromCheckoutResult{Subscription: dto.ToSubscriptionDTO(current, now)}, nil
	}

	uc.logger.Infow("subscription activated by checkout",
		"subscription_sid", sub.SID(),
		"user_id", userID,
		"expires_at", sub.ExpiresAt(),
	)
	publishChange(ctx, uc.publisher, uc.logger, userID, entitlement.ChangeSubscriptionActivated, sub.SID())

	return &ActivateFromCheckoutResult{Subscription: dto.ToSubscriptionDTO(sub, now), Activated: true}, nil
}
