package entity

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	JobId          uuid.UUID
	Status         string
	TechnicalScore *int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// ApplicantView joins an application with its candidate and job for
// company-facing listings and the ranking candidate pool.
type ApplicantView struct {
	ApplicationId  uuid.UUID
	UserId         uuid.UUID
	JobId          uuid.UUID
	UserName       string
	Skills         []string
	ResumeText     string
	Status         string
	TechnicalScore *int
	AppliedAt      time.Time
}
