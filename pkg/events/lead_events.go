package events

import "time"

const (
	TypeLeadQualified     = "LEAD_QUALIFIED"
	TypeLeadPersistFailed = "LEAD_PERSIST_FAILED"
)

// NewLeadQualifiedEvent fires when a conversation collects the full contact
// set and the lead record is written.
func NewLeadQualifiedEvent(sessionID, pestType, tier string) Event {
	return BaseEvent{
		Type: TypeLeadQualified,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"pest_type":  pestType,
			"tier":       tier,
		},
		OccurredAt: time.Now(),
	}
}

// NewLeadPersistFailedEvent fires when the lead write fails after the
// customer was already told the team will call. These need human follow-up.
func NewLeadPersistFailedEvent(sessionID, pestType, tier, reason string) Event {
	return BaseEvent{
		Type: TypeLeadPersistFailed,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"pest_type":  pestType,
			"tier":       tier,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}
