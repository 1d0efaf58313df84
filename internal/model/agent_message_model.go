package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AgentMessage rows are append-only. Clearing a chat removes its rows
// outright, so there is no soft delete here.
type AgentMessage struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_agent_messages_company_chat,priority:1"`
	ChatId        string         `gorm:"type:text;not null;index:idx_agent_messages_company_chat,priority:2"`
	Role          string         `gorm:"type:varchar(20);not null"`
	Content       string         `gorm:"type:text;not null"`
	Candidates    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	RankingSource string         `gorm:"type:varchar(20)"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (AgentMessage) TableName() string {
	return "agent_messages"
}
