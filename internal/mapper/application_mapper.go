package mapper

import (
	"time"

	"hireup-be/internal/entity"
	"hireup-be/internal/model"
)

type ApplicationMapper struct{}

func NewApplicationMapper() *ApplicationMapper {
	return &ApplicationMapper{}
}

func (m *ApplicationMapper) ToEntity(a *model.Application) *entity.Application {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Application{
		Id:             a.Id,
		UserId:         a.UserId,
		JobId:          a.JobId,
		Status:         a.Status,
		TechnicalScore: a.TechnicalScore,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ApplicationMapper) ToModel(a *entity.Application) *model.Application {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Application{
		Id:             a.Id,
		UserId:         a.UserId,
		JobId:          a.JobId,
		Status:         a.Status,
		TechnicalScore: a.TechnicalScore,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ApplicationMapper) ToEntities(models []*model.Application) []*entity.Application {
	entities := make([]*entity.Application, len(models))
	for i, a := range models {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
