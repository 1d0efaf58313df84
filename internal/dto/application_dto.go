package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	JobId uuid.UUID `json:"job_id" validate:"required"`
}

type ApplyResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type ShowApplicationResponse struct {
	Id             uuid.UUID  `json:"id"`
	JobId          uuid.UUID  `json:"job_id"`
	Status         string     `json:"status"`
	TechnicalScore *int       `json:"technical_score,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// UpdateStatusRequest carries a requested transition. ExpectedStatus is the
// status the caller last observed; the transition only applies if the row
// still holds it.
type UpdateStatusRequest struct {
	Id             uuid.UUID `json:"-"`
	Status         string    `json:"status" validate:"required"`
	TechnicalScore *int      `json:"technical_score"`
	ExpectedStatus string    `json:"expected_status"`
}

type UpdateStatusResponse struct {
	Id             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	TechnicalScore *int      `json:"technical_score,omitempty"`
}

type ApplicantResponse struct {
	ApplicationId  uuid.UUID `json:"application_id"`
	UserId         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Skills         []string  `json:"skills"`
	Status         string    `json:"status"`
	TechnicalScore *int      `json:"technical_score,omitempty"`
	AppliedAt      time.Time `json:"applied_at"`
}
