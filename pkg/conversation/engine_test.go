package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pest-assess-be/internal/constant"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/pkg/llm"
	"pest-assess-be/pkg/severity"
)

type fakeBackend struct {
	nextExtract  Slots
	extractErr   error
	replyErr     error
	lastSteering string
}

func (b *fakeBackend) ExtractSlots(_ context.Context, _ []Message) (Slots, error) {
	if b.extractErr != nil {
		return nil, b.extractErr
	}
	out := Slots{}
	for k, v := range b.nextExtract {
		out[k] = v
	}
	return out, nil
}

func (b *fakeBackend) GenerateReply(_ context.Context, _ []Message, steering string) (string, error) {
	b.lastSteering = steering
	if b.replyErr != nil {
		return "", b.replyErr
	}
	return "assistant reply", nil
}

type fakeGateway struct {
	mu       sync.Mutex
	saves    []LeadRecord
	failures int
	err      error
}

func (g *fakeGateway) Save(_ context.Context, lead LeadRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failures > 0 {
		g.failures--
		return g.err
	}
	g.saves = append(g.saves, lead)
	return nil
}

type fakeGuard struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{seen: map[string]bool{}}
}

func (g *fakeGuard) MarkOnce(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seen[key] {
		return false, nil
	}
	g.seen[key] = true
	return true, nil
}

func (g *fakeGuard) Seen(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seen[key], nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

func newTestEngine(backend TextGenerationBackend, gateway LeadGateway, guard GuardStore) *Engine {
	return NewEngine(backend, gateway, guard, nopLogger{}, Timeouts{})
}

func qualifiedSlots() Slots {
	return Slots{
		SlotPestType:      "rodents",
		SlotLocation:      "kitchen",
		SlotDuration:      "three weeks",
		SlotFrequency:     "daily",
		SlotSignsOrDamage: "droppings",
		SlotPriorAttempts: "snap traps",
	}
}

func contactSlotValues() Slots {
	return Slots{
		SlotContactName:          "Dana Wheeler",
		SlotContactPhone:         "555-0142",
		SlotContactEmail:         "dana@example.com",
		SlotContactCity:          "Portland",
		SlotContactPreferredTime: "mornings",
	}
}

func TestEngineTimeoutsConfigurableWithDefaults(t *testing.T) {
	engine := NewEngine(&fakeBackend{}, &fakeGateway{}, newFakeGuard(), nopLogger{}, Timeouts{
		Extract: 2 * time.Second,
	})

	assert.Equal(t, 2*time.Second, engine.extractTimeout)
	assert.Equal(t, 30*time.Second, engine.replyTimeout, "unset timeouts keep their defaults")
	assert.Equal(t, 10*time.Second, engine.saveTimeout)
}

func TestFollowUpAsksHighestPriorityMissingSlot(t *testing.T) {
	backend := &fakeBackend{nextExtract: Slots{
		SlotPestType: "ants",
		SlotLocation: "bathroom",
	}}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(nil)

	result, err := engine.ProcessTurn(context.Background(), session, "ants in my bathroom", "")
	require.NoError(t, err)

	assert.Equal(t, "assistant reply", result.Reply)
	assert.Contains(t, backend.lastSteering, followUpQuestions[SlotDuration],
		"duration is the highest-priority missing slot")
	assert.Equal(t, "ants", session.Slots[SlotPestType])
}

func TestSlotsNeverOverwritten(t *testing.T) {
	backend := &fakeBackend{nextExtract: Slots{SlotPestType: "ants"}}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(nil)

	_, err := engine.ProcessTurn(context.Background(), session, "I have ants", "")
	require.NoError(t, err)

	backend.nextExtract = Slots{SlotPestType: "spiders", SlotLocation: "garage"}
	_, err = engine.ProcessTurn(context.Background(), session, "actually in the garage", "")
	require.NoError(t, err)

	assert.Equal(t, "ants", session.Slots[SlotPestType], "first extraction wins")
	assert.Equal(t, "garage", session.Slots[SlotLocation], "new slots still merge")
}

func TestSeverityDisclosedExactlyOnce(t *testing.T) {
	backend := &fakeBackend{nextExtract: qualifiedSlots()}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(nil)

	result, err := engine.ProcessTurn(context.Background(), session, "here is everything", "")
	require.NoError(t, err)

	assert.True(t, result.ResultsShown)
	assert.Contains(t, result.Reply, "severe", "daily activity reads as severe")
	assert.Contains(t, result.Reply, "rodents")
	assert.Equal(t, severity.TierSevere, session.Tier)

	// The next turn moves on to contact collection, never re-discloses.
	backend.nextExtract = Slots{}
	result, err = engine.ProcessTurn(context.Background(), session, "ok", "")
	require.NoError(t, err)

	assert.False(t, result.ResultsShown)
	assert.Contains(t, backend.lastSteering, followUpQuestions[SlotContactName])
}

func TestAssessmentTierOverridesTextSignals(t *testing.T) {
	backend := &fakeBackend{nextExtract: qualifiedSlots()}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(&AssessmentContext{
		PrimaryCategory: "Rodents (Rats, Mice)",
		Tier:            severity.TierModerate,
	})

	result, err := engine.ProcessTurn(context.Background(), session, "details", "")
	require.NoError(t, err)

	assert.True(t, result.ResultsShown)
	assert.Contains(t, result.Reply, "moderate",
		"a completed assessment's tier wins over conversational signals")
}

func TestLeadPersistedOnce(t *testing.T) {
	backend := &fakeBackend{nextExtract: qualifiedSlots()}
	gateway := &fakeGateway{}
	engine := newTestEngine(backend, gateway, newFakeGuard())
	session := NewSession(nil)

	_, err := engine.ProcessTurn(context.Background(), session, "everything", "")
	require.NoError(t, err)

	backend.nextExtract = contactSlotValues()
	result, err := engine.ProcessTurn(context.Background(), session, "my details", "")
	require.NoError(t, err)

	assert.True(t, result.LeadPersisted)
	assert.False(t, result.LeadSaveFailed)
	assert.Equal(t, constant.LeadConfirmationReply, result.Reply)
	require.Len(t, gateway.saves, 1)

	lead := gateway.saves[0]
	assert.Equal(t, session.ID, lead.SessionID)
	assert.Equal(t, "rodents", lead.PestType)
	assert.Equal(t, severity.TierSevere, lead.Tier)
	assert.Equal(t, "Dana Wheeler", lead.Slots[SlotContactName])

	// Further turns never write a second record.
	backend.nextExtract = Slots{}
	result, err = engine.ProcessTurn(context.Background(), session, "thanks!", "")
	require.NoError(t, err)

	assert.False(t, result.LeadPersisted)
	assert.Len(t, gateway.saves, 1)
}

func TestLeadSaveFailureConfirmsAndRetries(t *testing.T) {
	backend := &fakeBackend{nextExtract: qualifiedSlots()}
	gateway := &fakeGateway{failures: 1, err: errors.New("connection refused")}
	engine := newTestEngine(backend, gateway, newFakeGuard())
	session := NewSession(nil)

	_, err := engine.ProcessTurn(context.Background(), session, "everything", "")
	require.NoError(t, err)

	backend.nextExtract = contactSlotValues()
	result, err := engine.ProcessTurn(context.Background(), session, "my details", "")
	require.NoError(t, err)

	assert.True(t, result.LeadSaveFailed)
	assert.False(t, result.LeadPersisted)
	assert.Equal(t, constant.LeadConfirmationReply, result.Reply,
		"the customer never sees the failure")
	require.NotNil(t, result.Lead, "the snapshot survives for the failure log")
	assert.Equal(t, "555-0142", result.Lead.Slots[SlotContactPhone])
	assert.False(t, session.LeadPersisted, "a failed save leaves the flag unset")
	assert.Empty(t, gateway.saves)

	// The next turn retries the save once the gateway recovers.
	backend.nextExtract = Slots{}
	result, err = engine.ProcessTurn(context.Background(), session, "ok", "")
	require.NoError(t, err)

	assert.True(t, result.LeadPersisted)
	assert.False(t, result.LeadSaveFailed)
	require.Len(t, gateway.saves, 1)
	assert.Equal(t, "Dana Wheeler", gateway.saves[0].Slots[SlotContactName])

	// And never a third save after success.
	result, err = engine.ProcessTurn(context.Background(), session, "thanks", "")
	require.NoError(t, err)
	assert.False(t, result.LeadPersisted)
	assert.Len(t, gateway.saves, 1)
}

func TestExtractionFailureYieldsApology(t *testing.T) {
	backend := &fakeBackend{extractErr: llm.ErrTimeout}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(nil)

	historyBefore := len(session.History())
	result, err := engine.ProcessTurn(context.Background(), session, "hello?", "")
	require.NoError(t, err)

	assert.Equal(t, constant.ApologyReply, result.Reply)
	assert.Empty(t, session.Slots)

	history := session.History()
	require.Len(t, history, historyBefore+2, "user message and apology are kept")
	assert.Equal(t, "hello?", history[len(history)-2].Content)

	// Recovery: the next turn proceeds normally.
	backend.extractErr = nil
	backend.nextExtract = Slots{SlotPestType: "moles"}
	_, err = engine.ProcessTurn(context.Background(), session, "I have moles", "")
	require.NoError(t, err)
	assert.Equal(t, "moles", session.Slots[SlotPestType])
}

func TestReplyFailureKeepsMergedSlots(t *testing.T) {
	backend := &fakeBackend{
		nextExtract: Slots{SlotPestType: "wasps"},
		replyErr:    llm.ErrBackend,
	}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(nil)

	result, err := engine.ProcessTurn(context.Background(), session, "wasps outside", "")
	require.NoError(t, err)

	assert.Equal(t, constant.ApologyReply, result.Reply)
	assert.Equal(t, "wasps", session.Slots[SlotPestType],
		"extraction results survive a generation failure")
}

func TestConcurrentTurnsSerialize(t *testing.T) {
	backend := &fakeBackend{nextExtract: Slots{}}
	engine := newTestEngine(backend, &fakeGateway{}, newFakeGuard())
	session := NewSession(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.ProcessTurn(context.Background(), session, "message", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// greeting + 8 user/assistant pairs
	assert.Len(t, session.History(), 1+16)
}

func TestDurableGuardSuppressesRedisclosureAcrossSessions(t *testing.T) {
	guard := newFakeGuard()
	backend := &fakeBackend{nextExtract: qualifiedSlots()}
	engine := newTestEngine(backend, &fakeGateway{}, guard)

	session := NewSession(nil)
	result, err := engine.ProcessTurn(context.Background(), session, "everything", "")
	require.NoError(t, err)
	require.True(t, result.ResultsShown)

	// Simulate a restart: new in-memory session object, same id, same
	// durable guard.
	restarted := NewSession(nil)
	restarted.ID = session.ID
	restarted.Slots = session.snapshotSlots()

	result, err = engine.ProcessTurn(context.Background(), restarted, "hello again", "")
	require.NoError(t, err)

	assert.False(t, result.ResultsShown, "durable guard wins over the fresh session flag")
	assert.True(t, strings.Contains(backend.lastSteering, followUpQuestions[SlotContactName]))
}

func TestDurableGuardSuppressesDoubleSaveAcrossRestarts(t *testing.T) {
	guard := newFakeGuard()
	backend := &fakeBackend{nextExtract: qualifiedSlots()}
	gateway := &fakeGateway{}
	engine := newTestEngine(backend, gateway, guard)

	session := NewSession(nil)
	_, err := engine.ProcessTurn(context.Background(), session, "everything", "")
	require.NoError(t, err)

	backend.nextExtract = contactSlotValues()
	result, err := engine.ProcessTurn(context.Background(), session, "my details", "")
	require.NoError(t, err)
	require.True(t, result.LeadPersisted)
	require.Len(t, gateway.saves, 1)

	// Restart with the full slot set already collected; only the durable
	// guard knows the lead exists.
	restarted := NewSession(nil)
	restarted.ID = session.ID
	restarted.Slots = session.snapshotSlots()

	backend.nextExtract = Slots{}
	result, err = engine.ProcessTurn(context.Background(), restarted, "hello again", "")
	require.NoError(t, err)

	assert.False(t, result.LeadPersisted)
	assert.Len(t, gateway.saves, 1, "the restarted session never writes a second record")
	assert.True(t, restarted.LeadPersisted, "the flag is restored from the guard")
}
