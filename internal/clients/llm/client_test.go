package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardwars/engine/internal/clients/llm"
	"github.com/wizardwars/engine/internal/credential"
	"github.com/wizardwars/engine/internal/dialogue"
	engerr "github.com/wizardwars/engine/internal/errors"
)

type completionStub struct {
	status     int
	content    string
	lastAuth   string
	lastModel  string
	lastPrompt string
}

func (s *completionStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lastAuth = r.Header.Get("Authorization")

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.lastModel = req.Model
		if len(req.Messages) > 0 {
			s.lastPrompt = req.Messages[0].Content
		}

		if s.status != 0 && s.status != http.StatusOK {
			http.Error(w, `{"error": {"message": "nope"}}`, s.status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": s.content,
					},
				},
			},
		})
	}
}

func newChannel(t *testing.T, stub *completionStub) dialogue.Channel {
	t.Helper()

	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)

	channel, err := llm.New(&llm.Config{
		Model:   "counsel-large",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)
	return channel
}

func request() *dialogue.GenerateRequest {
	return &dialogue.GenerateRequest{
		ArchetypeID: "sage",
		Label:       "The Sage",
		Description: "A patient keeper of old duels.",
		Spells:      []string{"moonbeam"},
		Trigger:     "greet",
	}
}

func TestGenerate_Success(t *testing.T) {
	stub := &completionStub{content: "  Patience is the sharpest blade.  "}
	channel := newChannel(t, stub)

	text, err := channel.Generate(context.Background(), credential.Credential{Value: "abc123"}, request())
	require.NoError(t, err)
	assert.Equal(t, "Patience is the sharpest blade.", text)
	assert.Equal(t, "Bearer abc123", stub.lastAuth, "the per-call credential authorizes the request")
	assert.Equal(t, "counsel-large", stub.lastModel)
	assert.Contains(t, stub.lastPrompt, "The Sage")
	assert.Contains(t, stub.lastPrompt, "moonbeam")
}

func TestGenerate_EmptyCompletionIsError(t *testing.T) {
	stub := &completionStub{content: "   "}
	channel := newChannel(t, stub)

	_, err := channel.Generate(context.Background(), credential.Credential{Value: "abc123"}, request())
	require.Error(t, err)
	assert.Equal(t, engerr.CodeRemoteDialogue, engerr.GetCode(err))
}

func TestGenerate_ServiceError(t *testing.T) {
	stub := &completionStub{status: http.StatusInternalServerError}
	channel := newChannel(t, stub)

	_, err := channel.Generate(context.Background(), credential.Credential{Value: "abc123"}, request())
	require.Error(t, err)
	assert.Equal(t, engerr.CodeRemoteDialogue, engerr.GetCode(err))
}

func TestGenerate_Validation(t *testing.T) {
	stub := &completionStub{content: "fine"}
	channel := newChannel(t, stub)

	_, err := channel.Generate(context.Background(), credential.Absent, request())
	assert.Error(t, err, "absent credential is caller misuse here; the resolver gates it upstream")

	_, err = channel.Generate(context.Background(), credential.Credential{Value: "abc123"}, nil)
	assert.Error(t, err)
}

func TestNew_Validation(t *testing.T) {
	_, err := llm.New(nil)
	assert.Error(t, err)

	_, err = llm.New(&llm.Config{})
	assert.Error(t, err)
}
