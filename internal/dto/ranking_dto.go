package dto

import "github.com/google/uuid"

type RankRequest struct {
	JobId  uuid.UUID `json:"job_id" validate:"required"`
	Prompt string    `json:"prompt" validate:"required"`
	Limit  *int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

type RankResponse struct {
	JobId         uuid.UUID             `json:"job_id"`
	Candidates    []RankedCandidateItem `json:"candidates"`
	RankingSource string                `json:"ranking_source"`
	RankingError  string                `json:"ranking_error,omitempty"`
	Limit         int                   `json:"limit"`
}

type AnalyzeRequest struct {
	Mode   string     `json:"mode" validate:"required,oneof=general job_specific"`
	JobId  *uuid.UUID `json:"job_id"`
	Prompt string     `json:"prompt" validate:"required"`
}

type AnalyzeResponse struct {
	Mode     string `json:"mode"`
	Analysis string `json:"analysis"`
	Source   string `json:"source"`
}
