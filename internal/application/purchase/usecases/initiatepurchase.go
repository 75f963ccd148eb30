package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/domain/purchase"
	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type InitiatePurchaseCommand struct {
	UserID   uint
	VideoSID string
}

type InitiatePurchaseResult struct {
	Purchase    *PurchaseDTO `json:"purchase"`
	AlreadyPaid bool         `json:"already_paid"`
	Created     bool         `json:"created"`
}

// InitiatePurchaseUseCase opens a pending per-video purchase. An existing
// pending purchase is reused and a paid one is reported as such.
type InitiatePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	videoRepo    video.Repository
	now          func() time.Time
	logger       logger.Interface
}

func NewInitiatePurchaseUseCase(
	purchaseRepo purchase.Repository,
	videoRepo video.Repository,
	logger logger.Interface,
) *InitiatePurchaseUseCase {
	return &InitiatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		videoRepo:    videoRepo,
		now:          biztime.NowUTC,
		logger:       logger,
	}
}

func (uc *InitiatePurchaseUseCase) Execute(ctx context.Context, cmd InitiatePurchaseCommand) (*InitiatePurchaseResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required to purchase")
	}

	v, err := uc.videoRepo.GetBySID(ctx, cmd.VideoSID)
	if err != nil {
		return nil, apperrors.NewServiceUnavailableError("video store unavailable", err.Error())
	}
	if v == nil || !v.IsActive() {
		return nil, apperrors.NewNotFoundError("video not found", cmd.VideoSID)
	}
	if v.IsFlatRate() {
		return nil, apperrors.NewValidationError(purchase.ErrVideoNotForSale.Error(), "subscribe to the monthly plan instead")
	}

	existing, err := uc.purchaseRepo.FindOpen(ctx, cmd.UserID, v.ID())
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if existing != nil {
		return &InitiatePurchaseResult{
			Purchase:    toPurchaseDTO(existing, v.SID()),
			AlreadyPaid: existing.Status().IsPaid(),
		}, nil
	}

	p, err := purchase.NewPurchase(cmd.UserID, v.ID(), v.PriceCents(), uc.now())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.purchaseRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create purchase",
			"user_id", cmd.UserID,
			"video_sid", v.SID(),
			"error", err,
		)
		return nil, storeUnavailable(err)
	}

	uc.logger.Infow("purchase created",
		"purchase_sid", p.SID(),
		"user_id", cmd.UserID,
		"video_sid", v.SID(),
	)
	return &InitiatePurchaseResult{Purchase: toPurchaseDTO(p, v.SID()), Created: true}, nil
}

func storeUnavailable(err error) error {
	return apperrors.NewServiceUnavailableError("purchase store unavailable", err.Error())
}
