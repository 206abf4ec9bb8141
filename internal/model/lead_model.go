package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lead struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	PestType      string         `gorm:"type:varchar(255);not null"`
	SeverityTier  string         `gorm:"type:varchar(32);not null"`
	Slots         datatypes.JSON `gorm:"type:jsonb"`
	ContactName   string         `gorm:"type:varchar(255);not null"`
	ContactPhone  string         `gorm:"type:varchar(64);not null"`
	ContactEmail  string         `gorm:"type:varchar(255)"`
	ContactCity   string         `gorm:"type:varchar(255)"`
	PreferredTime string         `gorm:"type:varchar(255)"`
	Status        string         `gorm:"type:varchar(32);not null;default:'new';index"`
	QualifiedAt   time.Time      `gorm:"not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
