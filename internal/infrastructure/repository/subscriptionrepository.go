package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/mappers"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
	"github.com/doramashorts/backend/internal/shared/db"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return subscription.ErrNonTerminalExists
		}
		r.logger.Errorw("failed to create subscription", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	return r.first(ctx, "sid = ?", sid)
}

func (r *SubscriptionRepositoryImpl) GetNonTerminalByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	return r.first(ctx, "non_terminal_key = ?", userID)
}

func (r *SubscriptionRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var list []*models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Scopes(db.NewestFirst()).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *SubscriptionRepositoryImpl) ListByStatus(ctx context.Context, status vo.SubscriptionStatus) ([]*subscription.Subscription, error) {
	var list []*models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", status.String()).
		Scopes(db.NewestFirst()).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions by status: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *SubscriptionRepositoryImpl) UpdateEvidence(ctx context.Context, sub *subscription.Subscription) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND status = ?", sub.ID(), vo.StatusPending.String()).
		Updates(map[string]interface{}{
			"whatsapp_number":   sub.WhatsAppNumber(),
			"payment_proof_url": sub.PaymentProofURL(),
			"version":           sub.Version(),
			"updated_at":        sub.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription evidence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrInvalidStatusTransition
	}
	return nil
}

// TransitionFrom is a compare-and-set on status. Concurrent writers racing on
// the same record see exactly one success.
func (r *SubscriptionRepositoryImpl) TransitionFrom(ctx context.Context, sub *subscription.Subscription, from vo.SubscriptionStatus) (bool, error) {
	model := r.mapper.ToModel(sub)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ? AND status = ?", sub.ID(), from.String()).
		Updates(map[string]interface{}{
			"status":            model.Status,
			"non_terminal_key":  model.NonTerminalKey,
			"starts_at":         model.StartsAt,
			"expires_at":        model.ExpiresAt,
			"approved_by":       model.ApprovedBy,
			"approved_at":       model.ApprovedAt,
			"activation_source": model.ActivationSource,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to transition subscription",
			"subscription_sid", sub.SID(),
			"from", from,
			"to", sub.Status(),
			"error", result.Error,
		)
		return false, fmt.Errorf("failed to transition subscription: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *SubscriptionRepositoryImpl) ExpireLapsed(ctx context.Context, now time.Time) ([]uint, error) {
	var userIDs []uint

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var lapsed []models.SubscriptionModel
		if err := tx.Select("id", "user_id").
			Where("status = ? AND expires_at <= ?", vo.StatusActive.String(), now).
			Find(&lapsed).Error; err != nil {
			return err
		}
		if len(lapsed) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(lapsed))
		for _, m := range lapsed {
			ids = append(ids, m.ID)
			userIDs = append(userIDs, m.UserID)
		}

		return tx.Model(&models.SubscriptionModel{}).
			Where("id IN ? AND status = ?", ids, vo.StatusActive.String()).
			Updates(map[string]interface{}{
				"status":           vo.StatusExpired.String(),
				"non_terminal_key": nil,
				"version":          gorm.Expr("version + 1"),
				"updated_at":       now,
			}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expire lapsed subscriptions: %w", err)
	}

	return userIDs, nil
}
