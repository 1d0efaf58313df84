package mapper

import (
	"encoding/json"

	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/model"

	"gorm.io/datatypes"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) MessageToEntity(msg *model.AgentMessage) *entity.AgentMessage {
	if msg == nil {
		return nil
	}

	candidates := []entity.RankedCandidate{}
	if len(msg.Candidates) > 0 {
		// Malformed payloads degrade to an empty list rather than failing the read.
		_ = json.Unmarshal(msg.Candidates, &candidates)
	}

	return &entity.AgentMessage{
		Id:            msg.Id,
		CompanyId:     msg.CompanyId,
		ChatId:        msg.ChatId,
		Role:          msg.Role,
		Content:       msg.Content,
		Candidates:    candidates,
		RankingSource: msg.RankingSource,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *AgentMapper) MessageToModel(msg *entity.AgentMessage) *model.AgentMessage {
	if msg == nil {
		return nil
	}

	candidates := msg.Candidates
	if candidates == nil {
		candidates = []entity.RankedCandidate{}
	}
	raw, err := json.Marshal(candidates)
	if err != nil {
		raw = []byte("[]")
	}

	return &model.AgentMessage{
		Id:            msg.Id,
		CompanyId:     msg.CompanyId,
		ChatId:        msg.ChatId,
		Role:          msg.Role,
		Content:       msg.Content,
		Candidates:    datatypes.JSON(raw),
		RankingSource: msg.RankingSource,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *AgentMapper) MessagesToEntities(models []*model.AgentMessage) []*entity.AgentMessage {
	entities := make([]*entity.AgentMessage, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

func (m *AgentMapper) MessagesToModels(messages []*entity.AgentMessage) []*model.AgentMessage {
	models := make([]*model.AgentMessage, len(messages))
	for i, msg := range messages {
		models[i] = m.MessageToModel(msg)
	}
	return models
}

func MessageToItem(msg *entity.AgentMessage) dto.AgentMessageItem {
	candidates := make([]dto.RankedCandidateItem, 0, len(msg.Candidates))
	for _, candidate := range msg.Candidates {
		candidates = append(candidates, RankedCandidateToItem(candidate))
	}
	return dto.AgentMessageItem{
		Id:            msg.Id,
		Role:          msg.Role,
		Content:       msg.Content,
		Candidates:    candidates,
		RankingSource: msg.RankingSource,
		CreatedAt:     msg.CreatedAt,
	}
}

func RankedCandidateToItem(candidate entity.RankedCandidate) dto.RankedCandidateItem {
	return dto.RankedCandidateItem{
		UserId:    candidate.UserId.String(),
		Name:      candidate.Name,
		Skills:    candidate.Skills,
		Score:     candidate.Score,
		Reasoning: candidate.Reasoning,
	}
}
