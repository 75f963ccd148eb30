package mappers

import (
	"fmt"

	"github.com/doramashorts/backend/internal/domain/purchase"
	vo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
)

type PurchaseMapper interface {
	ToEntity(model *models.PurchaseModel) (*purchase.Purchase, error)
	ToModel(entity *purchase.Purchase) *models.PurchaseModel
	ToEntities(models []*models.PurchaseModel) ([]*purchase.Purchase, error)
}

type PurchaseMapperImpl struct{}

func NewPurchaseMapper() PurchaseMapper {
	return &PurchaseMapperImpl{}
}

func (m *PurchaseMapperImpl) ToEntity(model *models.PurchaseModel) (*purchase.Purchase, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := purchase.ReconstructPurchase(purchase.ReconstructParams{
		ID:          model.ID,
		SID:         model.SID,
		UserID:      model.UserID,
		VideoID:     model.VideoID,
		Status:      vo.PurchaseStatus(model.Status),
		AmountCents: model.AmountCents,
		PaidAt:      model.PaidAt,
		Version:     model.Version,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct purchase %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *PurchaseMapperImpl) ToModel(entity *purchase.Purchase) *models.PurchaseModel {
	if entity == nil {
		return nil
	}

	return &models.PurchaseModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		UserID:      entity.UserID(),
		VideoID:     entity.VideoID(),
		Status:      entity.Status().String(),
		AmountCents: entity.AmountCents(),
		PaidKey:     entity.PaidKey(),
		PaidAt:      entity.PaidAt(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *PurchaseMapperImpl) ToEntities(modelList []*models.PurchaseModel) ([]*purchase.Purchase, error) {
	entities := make([]*purchase.Purchase, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
