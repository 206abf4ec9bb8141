package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pest-assess-be/internal/constant"
	"pest-assess-be/pkg/llm"
)

// TextGenerationBackend is what the engine needs from a language model.
// Both methods are expected to honor ctx deadlines; failures surface as
// llm.ErrTimeout or llm.ErrBackend.
type TextGenerationBackend interface {
	// ExtractSlots reads the transcript and returns the facts the
	// customer has explicitly stated, keyed by slot name.
	ExtractSlots(ctx context.Context, history []Message) (Slots, error)

	// GenerateReply produces the assistant's next message given the
	// transcript and turn-specific steering appended to the system prompt.
	GenerateReply(ctx context.Context, history []Message, steering string) (string, error)
}

// llmBackend adapts an llm.LLMProvider to the engine's contract.
type llmBackend struct {
	provider llm.LLMProvider
}

func NewLLMBackend(provider llm.LLMProvider) TextGenerationBackend {
	return &llmBackend{provider: provider}
}

func (b *llmBackend) ExtractSlots(ctx context.Context, history []Message) (Slots, error) {
	var sb strings.Builder
	sb.WriteString(constant.SlotExtractionPrompt)
	for _, msg := range history {
		sb.WriteString(msg.Role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}

	messages := []llm.Message{{Role: constant.ChatMessageRoleUser, Content: sb.String()}}
	if img := lastImageRef(history); img != "" {
		messages[0].Images = []string{img}
	}

	raw, err := b.provider.Chat(ctx, messages, llm.WithTemperature(0.0))
	if err != nil {
		return nil, err
	}

	slots, err := parseSlotJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed extraction payload: %v", llm.ErrBackend, err)
	}
	return slots, nil
}

func (b *llmBackend) GenerateReply(ctx context.Context, history []Message, steering string) (string, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	system := constant.AssistantSystemPrompt
	if steering != "" {
		system += "\n\n" + steering
	}
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleSystem, Content: system})
	for _, msg := range history {
		m := llm.Message{Role: msg.Role, Content: msg.Content}
		if msg.ImageRef != "" {
			m.Images = []string{msg.ImageRef}
		}
		messages = append(messages, m)
	}

	reply, err := b.provider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("%w: empty completion", llm.ErrBackend)
	}
	return reply, nil
}

func lastImageRef(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].ImageRef != "" {
			return history[i].ImageRef
		}
	}
	return ""
}

// parseSlotJSON tolerates fenced code blocks and surrounding prose around
// the JSON object the extraction prompt asks for.
func parseSlotJSON(raw string) (Slots, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in completion")
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &values); err != nil {
		return nil, err
	}

	slots := Slots{}
	for key, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		slot := Slot(key)
		if _, known := followUpQuestions[slot]; !known {
			continue
		}
		slots[slot] = value
	}
	return slots, nil
}
