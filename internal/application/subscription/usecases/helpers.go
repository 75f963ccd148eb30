package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type clock func() time.Time

func storeUnavailable(err error) error {
	return apperrors.NewServiceUnavailableError("subscription store unavailable", err.Error())
}

// publishChange is best effort. Clients also refetch on their own schedule.
func publishChange(ctx context.Context, pub EntitlementPublisher, log logger.Interface, userID uint, reason entitlement.ChangeReason, resourceID string) {
	if pub == nil {
		return
	}
	event := entitlement.ChangedEvent{
		UserID:     userID,
		Reason:     reason,
		ResourceID: resourceID,
		OccurredAt: biztime.NowUTC(),
	}
	if err := pub.PublishEntitlementChanged(ctx, event); err != nil {
		log.Warnw("failed to publish entitlement change",
			"user_id", userID,
			"reason", reason,
			"error", err,
		)
	}
}
