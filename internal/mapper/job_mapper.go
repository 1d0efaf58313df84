package mapper

import (
	"time"

	"hireup-be/internal/entity"
	"hireup-be/internal/model"
)

type JobMapper struct{}

func NewJobMapper() *JobMapper {
	return &JobMapper{}
}

func (m *JobMapper) ToEntity(j *model.Job) *entity.Job {
	if j == nil {
		return nil
	}

	var updatedAt *time.Time
	if !j.UpdatedAt.IsZero() {
		t := j.UpdatedAt
		updatedAt = &t
	}

	return &entity.Job{
		Id:          j.Id,
		CompanyId:   j.CompanyId,
		Title:       j.Title,
		Description: j.Description,
		Skills:      jsonToStrings(j.Skills),
		Status:      j.Status,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *JobMapper) ToModel(j *entity.Job) *model.Job {
	if j == nil {
		return nil
	}

	var updatedAt time.Time
	if j.UpdatedAt != nil {
		updatedAt = *j.UpdatedAt
	}

	return &model.Job{
		Id:          j.Id,
		CompanyId:   j.CompanyId,
		Title:       j.Title,
		Description: j.Description,
		Skills:      stringsToJSON(j.Skills),
		Status:      j.Status,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *JobMapper) ToEntities(models []*model.Job) []*entity.Job {
	entities := make([]*entity.Job, len(models))
	for i, j := range models {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
