package entity

import (
	"time"

	"github.com/google/uuid"
)

// RankedCandidate is the value object attached to assistant messages that
// resulted from a ranking request. Order within a message is significant.
type RankedCandidate struct {
	UserId    uuid.UUID `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	Skills    []string  `json:"skills"`
	Score     float64   `json:"score"`
	Reasoning string    `json:"reasoning"`
}

// AgentMessage belongs to exactly one chat of a company. Messages are
// append-only; message ids are caller supplied so retries are idempotent.
type AgentMessage struct {
	Id            uuid.UUID
	CompanyId     uuid.UUID
	ChatId        string
	Role          string
	Content       string
	Candidates    []RankedCandidate
	RankingSource string
	CreatedAt     time.Time
}

// ChatSummary is derived from persisted messages, never stored. A chat with
// zero messages has no summary and does not appear in listings.
type ChatSummary struct {
	ChatId       string
	UpdatedAt    time.Time
	MessageCount int
	LastMessage  string
}
