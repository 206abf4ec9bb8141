package dto

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleCallRequest is the direct scheduling form: the customer skips
// the conversation and books a call straight from the results screen.
type ScheduleCallRequest struct {
	SessionId     *uuid.UUID `json:"session_id,omitempty"`
	PestType      string     `json:"pest_type" validate:"required"`
	SeverityTier  string     `json:"severity_tier" validate:"required,oneof=Moderate High Severe"`
	ContactName   string     `json:"contact_name" validate:"required"`
	ContactPhone  string     `json:"contact_phone" validate:"required"`
	ContactEmail  string     `json:"contact_email" validate:"omitempty,email"`
	ContactCity   string     `json:"contact_city"`
	PreferredTime string     `json:"preferred_time"`
}

type ScheduleCallResponse struct {
	LeadId uuid.UUID `json:"lead_id"`
}

// ListLeadsQuery carries the dashboard's list filters.
type ListLeadsQuery struct {
	Status    string     `json:"status" validate:"omitempty,oneof=new scheduled contacted"`
	Tier      string     `json:"tier" validate:"omitempty,oneof=Moderate High Severe"`
	SessionId *uuid.UUID `json:"session_id,omitempty"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}

type LeadDTO struct {
	Id            uuid.UUID         `json:"id"`
	SessionId     uuid.UUID         `json:"session_id"`
	PestType      string            `json:"pest_type"`
	SeverityTier  string            `json:"severity_tier"`
	Slots         map[string]string `json:"slots,omitempty"`
	ContactName   string            `json:"contact_name"`
	ContactPhone  string            `json:"contact_phone"`
	ContactEmail  string            `json:"contact_email,omitempty"`
	ContactCity   string            `json:"contact_city,omitempty"`
	PreferredTime string            `json:"preferred_time,omitempty"`
	Status        string            `json:"status"`
	QualifiedAt   time.Time         `json:"qualified_at"`
	CreatedAt     time.Time         `json:"created_at"`
}

type ListLeadsResponse struct {
	Leads []LeadDTO `json:"leads"`
	Total int64     `json:"total"`
}

type UpdateLeadStatusRequest struct {
	LeadId uuid.UUID `json:"lead_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=new scheduled contacted"`
}
