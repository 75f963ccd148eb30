package mappers

import (
	"fmt"

	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		UserID:           model.UserID,
		Status:           vo.SubscriptionStatus(model.Status),
		StartsAt:         model.StartsAt,
		ExpiresAt:        model.ExpiresAt,
		WhatsAppNumber:   model.WhatsAppNumber,
		PaymentProofURL:  model.PaymentProofURL,
		ApprovedBy:       model.ApprovedBy,
		ApprovedAt:       model.ApprovedAt,
		ActivationSource: vo.ActivationSource(model.ActivationSource),
		Version:          model.Version,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriptionModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		UserID:           entity.UserID(),
		NonTerminalKey:   entity.NonTerminalKey(),
		Status:           entity.Status().String(),
		StartsAt:         entity.StartsAt(),
		ExpiresAt:        entity.ExpiresAt(),
		WhatsAppNumber:   entity.WhatsAppNumber(),
		PaymentProofURL:  entity.PaymentProofURL(),
		ApprovedBy:       entity.ApprovedBy(),
		ApprovedAt:       entity.ApprovedAt(),
		ActivationSource: entity.ActivationSource().String(),
		Version:          entity.Version(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
