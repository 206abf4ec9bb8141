package model

import "time"

// OpsAlert is pushed to connected operations dashboards. Not persisted;
// the failed-lead log is the durable record.
type OpsAlert struct {
	Type       string    `json:"type"`
	SessionId  string    `json:"session_id"`
	PestType   string    `json:"pest_type"`
	Tier       string    `json:"tier"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
