package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/domain/subscription"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// GetMySubscriptionUseCase returns the caller's most recent record with lazy
// expiry applied, or nil when they never subscribed.
type GetMySubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	now              clock
	logger           logger.Interface
}

func NewGetMySubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetMySubscriptionUseCase {
	return &GetMySubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *GetMySubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionDTO, error) {
	if userID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required")
	}

	subs, err := uc.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user subscriptions", "user_id", userID, "error", err)
		return nil, storeUnavailable(err)
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return dto.ToSubscriptionDTO(subs[0], uc.now()), nil
}
