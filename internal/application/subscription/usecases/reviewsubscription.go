package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type ReviewSubscriptionCommand struct {
	SubscriptionSID string
	AdminID         uint
}

// ReviewResult reports the record after the call. Applied is false when the
// record had already left pending and the call changed nothing.
type ReviewResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	Applied      bool                 `json:"applied"`
}

// ApproveSubscriptionUseCase applies the manual pending -> active transition.
type ApproveSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	publisher        EntitlementPublisher // Optional
	config           Config
	now              clock
	logger           logger.Interface
}

func NewApproveSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	config Config,
	logger logger.Interface,
) *ApproveSubscriptionUseCase {
	return &ApproveSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		config:           config.withDefaults(),
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *ApproveSubscriptionUseCase) SetEntitlementPublisher(publisher EntitlementPublisher) {
	uc.publisher = publisher
}

func (uc *ApproveSubscriptionUseCase) Execute(ctx context.Context, cmd ReviewSubscriptionCommand) (*ReviewResult, error) {
	if cmd.AdminID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required")
	}

	now := uc.now()
	result, err := applyFromPending(ctx, uc.subscriptionRepo, cmd.SubscriptionSID, now, func(sub *subscription.Subscription) error {
		return sub.Approve(cmd.AdminID, uc.config.ApprovalDays, now)
	})
	if err != nil {
		return nil, err
	}

	if result.Applied {
		uc.logger.Infow("subscription approved",
			"subscription_sid", cmd.SubscriptionSID,
			"admin_id", cmd.AdminID,
		)
		publishChange(ctx, uc.publisher, uc.logger, result.Subscription.UserID, entitlement.ChangeSubscriptionActivated, cmd.SubscriptionSID)
	}
	return result, nil
}

// RejectSubscriptionUseCase applies pending -> cancelled.
type RejectSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	publisher        EntitlementPublisher // Optional
	now              clock
	logger           logger.Interface
}

func NewRejectSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *RejectSubscriptionUseCase {
	return &RejectSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *RejectSubscriptionUseCase) SetEntitlementPublisher(publisher EntitlementPublisher) {
	uc.publisher = publisher
}

func (uc *RejectSubscriptionUseCase) Execute(ctx context.Context, cmd ReviewSubscriptionCommand) (*ReviewResult, error) {
	if cmd.AdminID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required")
	}

	now := uc.now()
	result, err := applyFromPending(ctx, uc.subscriptionRepo, cmd.SubscriptionSID, now, func(sub *subscription.Subscription) error {
		return sub.Reject(now)
	})
	if err != nil {
		return nil, err
	}

	if result.Applied {
		uc.logger.Infow("subscription rejected",
			"subscription_sid", cmd.SubscriptionSID,
			"admin_id", cmd.AdminID,
		)
		publishChange(ctx, uc.publisher, uc.logger, result.Subscription.UserID, entitlement.ChangeSubscriptionRejected, cmd.SubscriptionSID)
	}
	return result, nil
}

// applyFromPending loads the record, applies transition and persists it with
// a conditional update. A record that is no longer pending, before or during
// the call, is returned unchanged.
func applyFromPending(
	ctx context.Context,
	repo subscription.Repository,
	sid string,
	now time.Time,
	transition func(*subscription.Subscription) error,
) (*ReviewResult, error) {
	sub, err := repo.GetBySID(ctx, sid)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found", sid)
	}

	if sub.Status() != vo.StatusPending {
		return &ReviewResult{Subscription: dto.ToSubscriptionDTO(sub, now)}, nil
	}

	if err := transition(sub); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	applied, err := repo.TransitionFrom(ctx, sub, vo.StatusPending)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if !applied {
		current, err := repo.GetBySID(ctx, sid)
		if err != nil {
			return nil, storeUnavailable(err)
		}
		if current == nil {
			return nil, apperrors.NewNotFoundError("subscription not found", sid)
		}
		return &ReviewResult{Subscription: dto.ToSubscriptionDTO(current, now)}, nil
	}

	return &ReviewResult{Subscription: dto.ToSubscriptionDTO(sub, now), Applied: true}, nil
}
