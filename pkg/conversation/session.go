package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pest-assess-be/internal/constant"
	"pest-assess-be/pkg/severity"
)

// Message is one entry in the conversation transcript.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ImageRef  string    `json:"image_ref,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AssessmentContext carries the result of a completed structured
// assessment into a conversation session. Sessions started from the chat
// widget directly have none.
type AssessmentContext struct {
	PrimaryCategory    string
	SelectedCategories []string
	Tier               severity.Tier
	Percentage         int
}

// Session is the conversational counterpart of an assessment session. All
// mutation goes through the engine, which serializes turns per session.
type Session struct {
	mu sync.Mutex

	ID       uuid.UUID
	Messages []Message
	Slots    Slots

	// Assessment is non-nil when the session was opened from a completed
	// structured assessment; the severity read-out then comes from it
	// instead of the conversational lexicon.
	Assessment *AssessmentContext

	Tier          severity.Tier
	ResultsShown  bool
	LeadPersisted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession opens a session seeded with the assistant greeting.
func NewSession(assessment *AssessmentContext) *Session {
	now := time.Now()
	s := &Session{
		ID:         uuid.New(),
		Slots:      Slots{},
		Assessment: assessment,
		Tier:       severity.TierModerate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.Messages = append(s.Messages, Message{
		Role:      constant.ChatMessageRoleAssistant,
		Content:   constant.AssistantGreeting,
		Timestamp: now,
	})
	if assessment != nil {
		s.Slots[SlotPestType] = assessment.PrimaryCategory
		s.Tier = assessment.Tier
	}
	return s
}

// History returns a copy of the transcript. Callers must not rely on it
// staying current across turns.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

func (s *Session) append(role, content, imageRef string) {
	now := time.Now()
	s.Messages = append(s.Messages, Message{
		Role:      role,
		Content:   content,
		ImageRef:  imageRef,
		Timestamp: now,
	})
	s.UpdatedAt = now
}
