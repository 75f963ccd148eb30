package mappers

import (
	"fmt"

	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
)

type VideoMapper interface {
	ToEntity(model *models.VideoModel) (*video.Video, error)
	ToModel(entity *video.Video) *models.VideoModel
	ToEntities(models []*models.VideoModel) ([]*video.Video, error)
}

type VideoMapperImpl struct{}

func NewVideoMapper() VideoMapper {
	return &VideoMapperImpl{}
}

func (m *VideoMapperImpl) ToEntity(model *models.VideoModel) (*video.Video, error) {
	if model == nil {
		return nil, nil
	}

	tags := []string(model.Tags)
	if tags == nil {
		tags = []string{}
	}

	entity, err := video.ReconstructVideo(video.ReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Title:        model.Title,
		Description:  model.Description,
		ThumbnailURL: model.ThumbnailURL,
		VideoURL:     model.VideoURL,
		Tags:         tags,
		IsActive:     model.IsActive && !model.DeletedAt.Valid,
		PriceCents:   model.PriceCents,
		CreatedBy:    model.CreatedBy,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct video %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *VideoMapperImpl) ToModel(entity *video.Video) *models.VideoModel {
	if entity == nil {
		return nil
	}

	return &models.VideoModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		ThumbnailURL: entity.ThumbnailURL(),
		VideoURL:     entity.VideoURL(),
		Tags:         entity.Tags(),
		IsActive:     entity.IsActive(),
		PriceCents:   entity.PriceCents(),
		CreatedBy:    entity.CreatedBy(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *VideoMapperImpl) ToEntities(modelList []*models.VideoModel) ([]*video.Video, error) {
	entities := make([]*video.Video, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
