package usecases

import (
	"context"
	"fmt"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/subscription"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// ExpireSubscriptionsUseCase marks lapsed active records as expired.
// Reads already apply lazy expiry; this keeps the stored history accurate.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	publisher        EntitlementPublisher // Optional
	now              clock
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *ExpireSubscriptionsUseCase) SetEntitlementPublisher(publisher EntitlementPublisher) {
	uc.publisher = publisher
}

// Execute returns the number of records marked expired.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	userIDs, err := uc.subscriptionRepo.ExpireLapsed(ctx, uc.now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire lapsed subscriptions: %w", err)
	}

	if len(userIDs) == 0 {
		return 0, nil
	}

	uc.logger.Infow("expired lapsed subscriptions", "count", len(userIDs))
	for _, userID := range userIDs {
		publishChange(ctx, uc.publisher, uc.logger, userID, entitlement.ChangeSubscriptionExpired, "")
	}

	return len(userIDs), nil
}
