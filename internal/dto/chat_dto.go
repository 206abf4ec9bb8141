package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatSessionRequest struct {
	// Optional link to a completed assessment; the chat then opens with
	// the pest type and severity already known.
	AssessmentSessionId *uuid.UUID `json:"assessment_session_id,omitempty"`
}

type CreateChatSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Greeting string    `json:"greeting"`
}

type SendTurnRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required"`
	ImageRef  string    `json:"image_ref,omitempty"`
}

type SendTurnResponse struct {
	SessionId     uuid.UUID `json:"session_id"`
	Reply         string    `json:"reply"`
	ResultsShown  bool      `json:"results_shown"`
	LeadPersisted bool      `json:"lead_persisted"`
}

type ChatMessageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ImageRef  string    `json:"image_ref,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type GetChatHistoryResponse struct {
	SessionId uuid.UUID        `json:"session_id"`
	Messages  []ChatMessageDTO `json:"messages"`
}
