package conversation

import (
	"context"
	"fmt"
	"time"

	"pest-assess-be/internal/constant"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/pkg/severity"
)

// TurnResult is what one processed turn hands back to the transport layer.
type TurnResult struct {
	Reply          string
	ResultsShown   bool
	LeadPersisted  bool
	LeadSaveFailed bool
	Lead           *LeadRecord
}

// Engine drives the conversational qualification flow: one follow-up
// question per turn, a single severity disclosure, and a single lead save.
type Engine struct {
	backend TextGenerationBackend
	gateway LeadGateway
	guard   GuardStore
	log     logger.ILogger

	extractTimeout time.Duration
	replyTimeout   time.Duration
	saveTimeout    time.Duration
}

// Timeouts bounds the engine's external calls. Zero values fall back to
// the defaults.
type Timeouts struct {
	Extract time.Duration
	Reply   time.Duration
	Save    time.Duration
}

func NewEngine(backend TextGenerationBackend, gateway LeadGateway, guard GuardStore, log logger.ILogger, timeouts Timeouts) *Engine {
	if timeouts.Extract <= 0 {
		timeouts.Extract = 15 * time.Second
	}
	if timeouts.Reply <= 0 {
		timeouts.Reply = 30 * time.Second
	}
	if timeouts.Save <= 0 {
		timeouts.Save = 10 * time.Second
	}
	return &Engine{
		backend:        backend,
		gateway:        gateway,
		guard:          guard,
		log:            log,
		extractTimeout: timeouts.Extract,
		replyTimeout:   timeouts.Reply,
		saveTimeout:    timeouts.Save,
	}
}

// ProcessTurn appends the user's message, updates collected slots, and
// produces the assistant's reply. Turns on the same session are serialized;
// concurrent calls block rather than interleave.
func (e *Engine) ProcessTurn(ctx context.Context, session *Session, content, imageRef string) (TurnResult, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.append(constant.ChatMessageRoleUser, content, imageRef)

	extractCtx, cancel := context.WithTimeout(ctx, e.extractTimeout)
	extracted, err := e.backend.ExtractSlots(extractCtx, session.Messages)
	cancel()
	if err != nil {
		e.log.Error("conversation", "slot extraction failed", map[string]interface{}{
			"session_id": session.ID.String(),
			"error":      err.Error(),
		})
		session.append(constant.ChatMessageRoleAssistant, constant.ApologyReply, "")
		return TurnResult{Reply: constant.ApologyReply}, nil
	}
	session.Slots.Merge(extracted)

	if !e.resultsShown(ctx, session) {
		if session.Slots.Filled(qualificationSlots) {
			return e.discloseResults(ctx, session)
		}
		return e.askNext(ctx, session, qualificationSlots)
	}

	if session.Slots.Filled(contactSlots) {
		return e.persistLead(ctx, session)
	}
	return e.askNext(ctx, session, contactSlots)
}

// resultsShown consults both the in-memory flag and the durable guard so a
// restarted process never re-discloses.
func (e *Engine) resultsShown(ctx context.Context, session *Session) bool {
	if session.ResultsShown {
		return true
	}
	seen, err := e.guard.Seen(ctx, resultsGuardKey(session))
	if err != nil {
		return session.ResultsShown
	}
	if seen {
		session.ResultsShown = true
	}
	return seen
}

func (e *Engine) discloseResults(ctx context.Context, session *Session) (TurnResult, error) {
	first, err := e.guard.MarkOnce(ctx, resultsGuardKey(session))
	if err != nil {
		e.log.Warn("conversation", "guard store unavailable, using session flag", map[string]interface{}{
			"session_id": session.ID.String(),
			"error":      err.Error(),
		})
		first = !session.ResultsShown
	}
	if !first {
		session.ResultsShown = true
		return e.askNext(ctx, session, contactSlots)
	}

	if session.Assessment == nil {
		session.Tier = severity.TierFromText(
			session.Slots[SlotFrequency],
			session.Slots[SlotSignsOrDamage],
		)
	}

	var template string
	switch session.Tier {
	case severity.TierSevere:
		template = constant.SevereDisclosureTemplate
	case severity.TierHigh:
		template = constant.HighDisclosureTemplate
	default:
		template = constant.ModerateDisclosureTemplate
	}
	reply := fmt.Sprintf(template, session.Slots[SlotPestType])

	session.ResultsShown = true
	session.append(constant.ChatMessageRoleAssistant, reply, "")
	return TurnResult{Reply: reply, ResultsShown: true}, nil
}

func (e *Engine) persistLead(ctx context.Context, session *Session) (TurnResult, error) {
	if e.leadPersisted(ctx, session) {
		return e.reply(ctx, session, "The lead is already recorded. Answer the customer's questions and reassure them the team will be in touch.")
	}

	lead := LeadRecord{
		SessionID:   session.ID,
		PestType:    session.Slots[SlotPestType],
		Tier:        session.Tier,
		Slots:       session.snapshotSlots(),
		QualifiedAt: time.Now(),
	}

	saveCtx, cancel := context.WithTimeout(ctx, e.saveTimeout)
	saveErr := e.gateway.Save(saveCtx, lead)
	cancel()

	if saveErr != nil {
		// The customer still gets the confirmation; losing their trust
		// will not recover the record. The flag and guard stay unset so
		// the next trigger evaluation retries the save.
		e.log.Error("conversation", "lead persistence failed", map[string]interface{}{
			"session_id": session.ID.String(),
			"pest_type":  lead.PestType,
			"tier":       lead.Tier.String(),
			"error":      saveErr.Error(),
		})
		session.append(constant.ChatMessageRoleAssistant, constant.LeadConfirmationReply, "")
		return TurnResult{
			Reply:          constant.LeadConfirmationReply,
			LeadSaveFailed: true,
			Lead:           &lead,
		}, nil
	}

	session.LeadPersisted = true
	if _, err := e.guard.MarkOnce(ctx, leadGuardKey(session)); err != nil {
		e.log.Warn("conversation", "guard store unavailable, using session flag", map[string]interface{}{
			"session_id": session.ID.String(),
			"error":      err.Error(),
		})
	}

	session.append(constant.ChatMessageRoleAssistant, constant.LeadConfirmationReply, "")
	return TurnResult{
		Reply:         constant.LeadConfirmationReply,
		LeadPersisted: true,
		Lead:          &lead,
	}, nil
}

// leadPersisted mirrors resultsShown: the in-memory flag first, then the
// durable guard so a restarted process never double-saves.
func (e *Engine) leadPersisted(ctx context.Context, session *Session) bool {
	if session.LeadPersisted {
		return true
	}
	seen, err := e.guard.Seen(ctx, leadGuardKey(session))
	if err != nil {
		return session.LeadPersisted
	}
	if seen {
		session.LeadPersisted = true
	}
	return seen
}

func (e *Engine) askNext(ctx context.Context, session *Session, slots []Slot) (TurnResult, error) {
	slot, ok := session.Slots.NextMissing(slots)
	if !ok {
		return e.reply(ctx, session, "Answer the customer's message helpfully.")
	}

	steering := fmt.Sprintf(
		"Acknowledge the customer's last message briefly, then ask exactly one question to learn the following and nothing else: %q. Do not ask about anything you already know.",
		followUpQuestions[slot],
	)
	return e.reply(ctx, session, steering)
}

// reply generates the assistant turn, falling back to the apology template
// when the backend fails. State already merged this turn is kept.
func (e *Engine) reply(ctx context.Context, session *Session, steering string) (TurnResult, error) {
	replyCtx, cancel := context.WithTimeout(ctx, e.replyTimeout)
	text, err := e.backend.GenerateReply(replyCtx, session.Messages, steering)
	cancel()
	if err != nil {
		e.log.Error("conversation", "reply generation failed", map[string]interface{}{
			"session_id": session.ID.String(),
			"error":      err.Error(),
		})
		text = constant.ApologyReply
	}
	session.append(constant.ChatMessageRoleAssistant, text, "")
	return TurnResult{Reply: text}, nil
}

func (s *Session) snapshotSlots() Slots {
	out := make(Slots, len(s.Slots))
	for slot, value := range s.Slots {
		out[slot] = value
	}
	return out
}

func resultsGuardKey(s *Session) string {
	return "conversation:results_shown:" + s.ID.String()
}

func leadGuardKey(s *Session) string {
	return "conversation:lead_persisted:" + s.ID.String()
}
