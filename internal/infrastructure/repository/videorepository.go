package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/mappers"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
	"github.com/doramashorts/backend/internal/shared/db"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type VideoRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.VideoMapper
	logger logger.Interface
}

func NewVideoRepository(db *gorm.DB, logger logger.Interface) video.Repository {
	return &VideoRepositoryImpl{
		db:     db,
		mapper: mappers.NewVideoMapper(),
		logger: logger,
	}
}

func (r *VideoRepositoryImpl) Create(ctx context.Context, v *video.Video) error {
	model := r.mapper.ToModel(v)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create video", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create video: %w", err)
	}

	if err := v.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set video ID: %w", err)
	}
	return nil
}

func (r *VideoRepositoryImpl) GetBySID(ctx context.Context, sid string) (*video.Video, error) {
	var model models.VideoModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *VideoRepositoryImpl) List(ctx context.Context, filter video.ListFilter) ([]*video.Video, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.VideoModel{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	var list []*models.VideoModel
	if err := query.
		Scopes(db.NewestFirst(), db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *VideoRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.VideoModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return video.ErrVideoNotFound
	}
	return nil
}
