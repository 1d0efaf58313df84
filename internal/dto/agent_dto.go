package dto

import (
	"time"

	"github.com/google/uuid"
)

type RankedCandidateItem struct {
	UserId    string   `json:"user_id"`
	Name      string   `json:"name"`
	Skills    []string `json:"skills"`
	Score     float64  `json:"score"`
	Reasoning string   `json:"reasoning"`
}

// AgentMessageItem is one chat message. The id comes from the caller so a
// retried batch lands on the same rows.
type AgentMessageItem struct {
	Id            uuid.UUID             `json:"id" validate:"required"`
	Role          string                `json:"role" validate:"required,oneof=user assistant"`
	Content       string                `json:"content" validate:"required"`
	Candidates    []RankedCandidateItem `json:"candidates,omitempty"`
	RankingSource string                `json:"ranking_source,omitempty"`
	CreatedAt     time.Time             `json:"created_at,omitempty"`
}

type AppendMessagesRequest struct {
	ChatId   string             `json:"chat_id" validate:"required"`
	Messages []AgentMessageItem `json:"messages" validate:"required,min=1,dive"`
}

type AppendMessagesResponse struct {
	ChatId   string `json:"chat_id"`
	Appended int64  `json:"appended"`
}

type GetMessagesResponse struct {
	ChatId   string             `json:"chat_id"`
	Messages []AgentMessageItem `json:"messages"`
}

type ChatSummaryResponse struct {
	ChatId       string    `json:"chat_id"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int64     `json:"message_count"`
	LastMessage  string    `json:"last_message"`
}

type ClearChatResponse struct {
	Cleared int64 `json:"cleared"`
}
