package usecases

import (
	"context"
	"errors"

	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type CreateVideoCommand struct {
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Tags         []string
	PriceCents   int64
	CreatedBy    uint
}

type CreateVideoUseCase struct {
	videoRepo video.Repository
	currency  string
	logger    logger.Interface
}

func NewCreateVideoUseCase(videoRepo video.Repository, currency string, logger logger.Interface) *CreateVideoUseCase {
	return &CreateVideoUseCase{videoRepo: videoRepo, currency: currency, logger: logger}
}

func (uc *CreateVideoUseCase) Execute(ctx context.Context, cmd CreateVideoCommand) (*VideoDTO, error) {
	v, err := video.NewVideo(video.CreateParams{
		Title:        cmd.Title,
		Description:  cmd.Description,
		ThumbnailURL: cmd.ThumbnailURL,
		VideoURL:     cmd.VideoURL,
		Tags:         cmd.Tags,
		PriceCents:   cmd.PriceCents,
		CreatedBy:    cmd.CreatedBy,
	}, biztime.NowUTC())
	if err != nil {
		if errors.Is(err, video.ErrTitleRequired) || errors.Is(err, video.ErrVideoURLRequired) || errors.Is(err, video.ErrInvalidPrice) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, err
	}

	if err := uc.videoRepo.Create(ctx, v); err != nil {
		uc.logger.Errorw("failed to create video", "title", v.Title(), "error", err)
		return nil, apperrors.NewServiceUnavailableError("video store unavailable")
	}

	uc.logger.Infow("video created",
		"video_sid", v.SID(),
		"price_cents", v.PriceCents(),
		"created_by", cmd.CreatedBy,
	)
	return toVideoDTO(v, uc.currency), nil
}
