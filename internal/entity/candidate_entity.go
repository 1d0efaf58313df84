package entity

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is the applicant profile the ranking provider scores against.
type Candidate struct {
	Id         uuid.UUID
	Name       string
	Email      string
	Skills     []string
	ResumeText string
	GradDate   string
	CreatedAt  time.Time
}
