package model

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_user_job,priority:1"`
	JobId          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_user_job,priority:2"`
	Status         string    `gorm:"type:varchar(50);not null;default:'submitted'"`
	TechnicalScore *int      `gorm:"type:int"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Application) TableName() string {
	return "applications"
}
