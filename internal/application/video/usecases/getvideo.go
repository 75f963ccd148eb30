package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type GetVideoQuery struct {
	UserID   uint
	VideoSID string
}

type GetVideoUseCase struct {
	videoRepo video.Repository
	loader    EntitlementLoader
	renderer  DescriptionRenderer
	currency  string
	now       func() time.Time
	logger    logger.Interface
}

func NewGetVideoUseCase(videoRepo video.Repository, loader EntitlementLoader, renderer DescriptionRenderer, currency string, logger logger.Interface) *GetVideoUseCase {
	return &GetVideoUseCase{
		videoRepo: videoRepo,
		loader:    loader,
		renderer:  renderer,
		currency:  currency,
		now:       biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *GetVideoUseCase) Execute(ctx context.Context, query GetVideoQuery) (*VideoDTO, error) {
	v, err := uc.videoRepo.GetBySID(ctx, query.VideoSID)
	if err != nil {
		uc.logger.Errorw("failed to get video", "video_sid", query.VideoSID, "error", err)
		return nil, apperrors.NewServiceUnavailableError("video store unavailable")
	}
	if v == nil || !v.IsActive() {
		return nil, apperrors.NewNotFoundError("video not found", query.VideoSID)
	}

	dto := toVideoDTO(v, uc.currency)
	dto.Description = v.Description()
	if v.Description() != "" {
		html, err := uc.renderer.ToHTMLSanitized(v.Description())
		if err != nil {
			uc.logger.Warnw("failed to render video description", "video_sid", v.SID(), "error", err)
		} else {
			dto.DescriptionHTML = html
		}
	}

	result := entitlement.NoEntitlement
	snapshot, err := uc.loader.Load(ctx, query.UserID)
	if err != nil {
		uc.logger.Warnw("failed to load entitlement for video detail",
			"user_id", query.UserID,
			"video_sid", v.SID(),
			"error", err,
		)
	} else {
		result = snapshot.For(v.ID(), uc.now())
	}
	dto.applyAccess(query.UserID != 0, result)

	return dto, nil
}
