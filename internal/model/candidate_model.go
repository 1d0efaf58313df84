package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Candidate struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string         `gorm:"type:text;not null"`
	Email      string         `gorm:"type:text;not null;uniqueIndex"`
	Skills     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ResumeText string         `gorm:"type:text"`
	GradDate   string         `gorm:"type:varchar(20)"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}
