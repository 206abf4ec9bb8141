package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pest-assess-be/pkg/llm"
)

func newTestProvider(t *testing.T, capture *[]byte) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*capture = body
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}],"role":"model"}}]}`))
	}))
	t.Cleanup(srv.Close)

	p := NewGeminiProvider("test-key", "", time.Second)
	p.baseURL = srv.URL
	return p
}

func TestChatSendsGenerationConfig(t *testing.T) {
	var captured []byte
	p := newTestProvider(t, &captured)

	_, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithTemperature(0.0), llm.WithMaxTokens(256),
	)
	require.NoError(t, err)

	var req map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(captured, &req))
	require.Contains(t, req, "generationConfig",
		"temperature 0.0 must still be sent on the wire")

	var cfg struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	}
	require.NoError(t, json.Unmarshal(req["generationConfig"], &cfg))
	assert.Equal(t, 0.0, cfg.Temperature)
	assert.Equal(t, 256, cfg.MaxOutputTokens)

	assert.Contains(t, string(req["generationConfig"]), `"temperature":0`,
		"zero temperature is serialized, not omitted")
}

func TestChatMapsRolesAndSystemInstruction(t *testing.T) {
	var captured []byte
	p := newTestProvider(t, &captured)

	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be terse"},
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)

	var req geminiRequest
	require.NoError(t, json.Unmarshal(captured, &req))
	require.NotNil(t, req.SystemInstruction)
	assert.Equal(t, "be terse", req.SystemInstruction.Parts[0].Text)
	require.Len(t, req.Contents, 2)
	assert.Equal(t, "user", req.Contents[0].Role)
	assert.Equal(t, "model", req.Contents[1].Role)
}
