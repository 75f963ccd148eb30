package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/domain/video"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// DeleteVideoUseCase hides a video from the catalog. Existing purchases keep
// their rows; the gate reports the video as not found.
type DeleteVideoUseCase struct {
	videoRepo video.Repository
	logger    logger.Interface
}

func NewDeleteVideoUseCase(videoRepo video.Repository, logger logger.Interface) *DeleteVideoUseCase {
	return &DeleteVideoUseCase{videoRepo: videoRepo, logger: logger}
}

func (uc *DeleteVideoUseCase) Execute(ctx context.Context, sid string) error {
	v, err := uc.videoRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load video for delete", "video_sid", sid, "error", err)
		return apperrors.NewServiceUnavailableError("video store unavailable")
	}
	if v == nil {
		return apperrors.NewNotFoundError("video not found", sid)
	}

	if err := uc.videoRepo.Delete(ctx, v.ID()); err != nil {
		uc.logger.Errorw("failed to delete video", "video_sid", sid, "error", err)
		return apperrors.NewServiceUnavailableError("video store unavailable")
	}

	uc.logger.Infow("video deleted", "video_sid", sid)
	return nil
}
