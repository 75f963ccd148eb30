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

type CheckPlaybackCommand struct {
	UserID   uint
	VideoSID string
}

// PlaybackResult carries VideoURL only when Locked is false.
type PlaybackResult struct {
	Locked      bool                   `json:"locked"`
	Reason      entitlement.LockReason `json:"reason,omitempty"`
	Entitlement entitlement.Kind       `json:"entitlement"`
	VideoSID    string                 `json:"video_id"`
	VideoURL    string                 `json:"video_url,omitempty"`
}

// CheckPlaybackUseCase is the content access gate. It fails closed: if the
// caller's records cannot be read the video stays locked.
type CheckPlaybackUseCase struct {
	videoRepo video.Repository
	loader    *Loader
	now       func() time.Time
	logger    logger.Interface
}

func NewCheckPlaybackUseCase(videoRepo video.Repository, loader *Loader, logger logger.Interface) *CheckPlaybackUseCase {
	return &CheckPlaybackUseCase{
		videoRepo: videoRepo,
		loader:    loader,
		now:       biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *CheckPlaybackUseCase) Execute(ctx context.Context, cmd CheckPlaybackCommand) (*PlaybackResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required to watch")
	}

	v, err := uc.videoRepo.GetBySID(ctx, cmd.VideoSID)
	if err != nil {
		uc.logger.Errorw("failed to load video for playback", "video_sid", cmd.VideoSID, "error", err)
		return nil, apperrors.NewServiceUnavailableError("video store unavailable")
	}
	if v == nil || !v.IsActive() {
		return nil, apperrors.NewNotFoundError("video not found", cmd.VideoSID)
	}

	locked := &PlaybackResult{
		Locked:      true,
		Entitlement: entitlement.KindNone,
		VideoSID:    v.SID(),
	}

	snapshot, err := uc.loader.Load(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Warnw("entitlement unavailable, denying playback",
			"user_id", cmd.UserID,
			"video_sid", v.SID(),
			"error", err,
		)
		locked.Reason = entitlement.LockReasonUnavailable
		return locked, nil
	}

	result := snapshot.For(v.ID(), uc.now())
	if !result.Entitled() {
		locked.Reason = entitlement.ReasonFor(true, result, v.IsFlatRate())
		return locked, nil
	}

	return &PlaybackResult{
		Entitlement: result.Kind,
		VideoSID:    v.SID(),
		VideoURL:    v.VideoURL(),
	}, nil
}
