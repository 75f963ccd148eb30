package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/purchase"
	vo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type MarkPurchasePaidCommand struct {
	UserID      uint
	PurchaseSID string
}

type MarkPurchasePaidResult struct {
	Purchase *PurchaseDTO
	Applied  bool
}

// MarkPurchasePaidUseCase applies pending -> paid for a purchase owned by the
// caller. At most one paid purchase exists per user and video; a duplicate
// pending purchase for an already paid video is marked failed.
type MarkPurchasePaidUseCase struct {
	purchaseRepo purchase.Repository
	publisher    EntitlementPublisher // Optional
	now          func() time.Time
	logger       logger.Interface
}

func NewMarkPurchasePaidUseCase(purchaseRepo purchase.Repository, logger logger.Interface) *MarkPurchasePaidUseCase {
	return &MarkPurchasePaidUseCase{
		purchaseRepo: purchaseRepo,
		now:          biztime.NowUTC,
		logger:       logger,
	}
}

func (uc *MarkPurchasePaidUseCase) SetEntitlementPublisher(publisher EntitlementPublisher) {
	uc.publisher = publisher
}

func (uc *MarkPurchasePaidUseCase) Execute(ctx context.Context, cmd MarkPurchasePaidCommand) (*MarkPurchasePaidResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required")
	}

	p, err := uc.purchaseRepo.GetBySID(ctx, cmd.PurchaseSID)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	// Another user's purchase is indistinguishable from a missing one.
	if p == nil || p.UserID() != cmd.UserID {
		return nil, apperrors.NewNotFoundError("purchase not found", cmd.PurchaseSID)
	}
	if p.Status() != vo.PurchaseStatusPending {
		return &MarkPurchasePaidResult{Purchase: toPurchaseDTO(p, "")}, nil
	}

	now := uc.now()
	if err := p.MarkAsPaid(now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	applied, err := uc.purchaseRepo.TransitionFrom(ctx, p, vo.PurchaseStatusPending)
	if errors.Is(err, purchase.ErrAlreadyPaid) {
		return uc.failDuplicate(ctx, cmd.PurchaseSID, now)
	}
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if !applied {
		current, err := uc.purchaseRepo.GetBySID(ctx, cmd.PurchaseSID)
		if err != nil {
			return nil, storeUnavailable(err)
		}
		return &MarkPurchasePaidResult{Purchase: toPurchaseDTO(current, "")}, nil
	}

	uc.logger.Infow("purchase paid",
		"purchase_sid", p.SID(),
		"user_id", p.UserID(),
		"video_id", p.VideoID(),
	)
	if uc.publisher != nil {
		event := entitlement.ChangedEvent{
			UserID:     p.UserID(),
			Reason:     entitlement.ChangePurchasePaid,
			ResourceID: p.SID(),
			OccurredAt: now,
		}
		if err := uc.publisher.PublishEntitlementChanged(ctx, event); err != nil {
			uc.logger.Warnw("failed to publish entitlement change", "purchase_sid", p.SID(), "error", err)
		}
	}

	return &MarkPurchasePaidResult{Purchase: toPurchaseDTO(p, ""), Applied: true}, nil
}

func (uc *MarkPurchasePaidUseCase) failDuplicate(ctx context.Context, sid string, now time.Time) (*MarkPurchasePaidResult, error) {
	dup, err := uc.purchaseRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if dup == nil || dup.Status() != vo.PurchaseStatusPending {
		return &MarkPurchasePaidResult{Purchase: toPurchaseDTO(dup, "")}, nil
	}
	if err := dup.MarkAsFailed(now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := uc.purchaseRepo.TransitionFrom(ctx, dup, vo.PurchaseStatusPending); err != nil {
		return nil, storeUnavailable(err)
	}
	uc.logger.Warnw("duplicate purchase for an already paid video marked failed",
		"purchase_sid", sid,
		"user_id", dup.UserID(),
		"video_id", dup.VideoID(),
	)
	return &MarkPurchasePaidResult{Purchase: toPurchaseDTO(dup, "")}, nil
}
