package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/domain/purchase"
	vo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/mappers"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
	"github.com/doramashorts/backend/internal/shared/db"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PurchaseMapper
	logger logger.Interface
}

func NewPurchaseRepository(db *gorm.DB, logger logger.Interface) purchase.Repository {
	return &PurchaseRepositoryImpl{
		db:     db,
		mapper: mappers.NewPurchaseMapper(),
		logger: logger,
	}
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, p *purchase.Purchase) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create purchase", "user_id", model.UserID, "video_id", model.VideoID, "error", err)
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set purchase ID: %w", err)
	}
	return nil
}

func (r *PurchaseRepositoryImpl) GetBySID(ctx context.Context, sid string) (*purchase.Purchase, error) {
	var model models.PurchaseModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PurchaseRepositoryImpl) FindOpen(ctx context.Context, userID, videoID uint) (*purchase.Purchase, error) {
	var model models.PurchaseModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND video_id = ? AND status IN ?", userID, videoID,
			[]string{vo.PurchaseStatusPaid.String(), vo.PurchaseStatusPending.String()}).
		Order("CASE WHEN status = '"+vo.PurchaseStatusPaid.String()+"' THEN 0 ELSE 1 END").
		Scopes(db.NewestFirst()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open purchase: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PurchaseRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*purchase.Purchase, error) {
	var list []*models.PurchaseModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Scopes(db.NewestFirst()).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *PurchaseRepositoryImpl) TransitionFrom(ctx context.Context, p *purchase.Purchase, from vo.PurchaseStatus) (bool, error) {
	model := r.mapper.ToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PurchaseModel{}).
		Where("id = ? AND status = ?", p.ID(), from.String()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"paid_key":   model.PaidKey,
			"paid_at":    model.PaidAt,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return false, purchase.ErrAlreadyPaid
		}
		r.logger.Errorw("failed to transition purchase",
			"purchase_sid", p.SID(),
			"from", from,
			"to", p.Status(),
			"error", result.Error,
		)
		return false, fmt.Errorf("failed to transition purchase: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}
