package mapper

import (
	"hireup-be/internal/entity"
	"hireup-be/internal/model"
)

type CandidateMapper struct{}

func NewCandidateMapper() *CandidateMapper {
	return &CandidateMapper{}
}

func (m *CandidateMapper) ToEntity(c *model.Candidate) *entity.Candidate {
	if c == nil {
		return nil
	}

	return &entity.Candidate{
		Id:         c.Id,
		Name:       c.Name,
		Email:      c.Email,
		Skills:     jsonToStrings(c.Skills),
		ResumeText: c.ResumeText,
		GradDate:   c.GradDate,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *CandidateMapper) ToModel(c *entity.Candidate) *model.Candidate {
	if c == nil {
		return nil
	}

	return &model.Candidate{
		Id:         c.Id,
		Name:       c.Name,
		Email:      c.Email,
		Skills:     stringsToJSON(c.Skills),
		ResumeText: c.ResumeText,
		GradDate:   c.GradDate,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *CandidateMapper) ToEntities(models []*model.Candidate) []*entity.Candidate {
	entities := make([]*entity.Candidate, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
