package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// ListPendingSubscriptionsUseCase returns the admin review queue, most recent
// first, with the submitted evidence.
type ListPendingSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListPendingSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListPendingSubscriptionsUseCase {
	return &ListPendingSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListPendingSubscriptionsUseCase) Execute(ctx context.Context) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.subscriptionRepo.ListByStatus(ctx, vo.StatusPending)
	if err != nil {
		uc.logger.Errorw("failed to list pending subscriptions", "error", err)
		return nil, storeUnavailable(err)
	}
	return dto.ToSubscriptionDTOs(subs, biztime.NowUTC()), nil
}
