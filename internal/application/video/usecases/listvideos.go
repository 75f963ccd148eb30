package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/constants"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type ListVideosQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListVideosResult struct {
	Videos   []*VideoDTO `json:"videos"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type ListVideosUseCase struct {
	videoRepo video.Repository
	loader    EntitlementLoader
	currency  string
	now       func() time.Time
	logger    logger.Interface
}

func NewListVideosUseCase(videoRepo video.Repository, loader EntitlementLoader, currency string, logger logger.Interface) *ListVideosUseCase {
	return &ListVideosUseCase{
		videoRepo: videoRepo,
		loader:    loader,
		currency:  currency,
		now:       biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *ListVideosUseCase) Execute(ctx context.Context, query ListVideosQuery) (*ListVideosResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	videos, total, err := uc.videoRepo.List(ctx, video.ListFilter{
		OnlyActive: true,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list videos", "error", err)
		return nil, apperrors.NewServiceUnavailableError("video store unavailable")
	}

	authenticated := query.UserID != 0
	snapshot, err := uc.loader.Load(ctx, query.UserID)
	if err != nil {
		// Catalog stays browsable; every video simply shows as locked.
		uc.logger.Warnw("failed to load entitlement for catalog", "user_id", query.UserID, "error", err)
		snapshot = nil
	}

	now := uc.now()
	out := make([]*VideoDTO, 0, len(videos))
	for _, v := range videos {
		dto := toVideoDTO(v, uc.currency)
		result := entitlement.NoEntitlement
		if snapshot != nil {
			result = snapshot.For(v.ID(), now)
		}
		dto.applyAccess(authenticated, result)
		out = append(out, dto)
	}

	return &ListVideosResult{
		Videos:   out,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
