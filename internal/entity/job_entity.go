package entity

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	Id          uuid.UUID
	CompanyId   uuid.UUID
	Title       string
	Description string
	Skills      []string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)
