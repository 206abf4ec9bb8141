package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusNew       = "new"
	LeadStatusScheduled = "scheduled"
	LeadStatusContacted = "contacted"
)

type Lead struct {
	Id            uuid.UUID
	SessionId     uuid.UUID
	PestType      string
	SeverityTier  string
	Slots         map[string]string
	ContactName   string
	ContactPhone  string
	ContactEmail  string
	ContactCity   string
	PreferredTime string
	Status        string
	QualifiedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
