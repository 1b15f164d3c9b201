// Package llm adapts an OpenAI-compatible chat completion API to the
// dialogue.Channel contract. The credential is taken per call rather than
// at construction so a rotated key is honored on the next request.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/wizardwars/engine/internal/credential"
	"github.com/wizardwars/engine/internal/dialogue"
	engerr "github.com/wizardwars/engine/internal/errors"
)

const maxCounselTokens = 256

type client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Config holds configuration for the LLM channel
type Config struct {
	Model      string       // Required: chat model identifier
	BaseURL    string       // Optional: OpenAI-compatible endpoint override
	HTTPClient *http.Client // Optional
}

// New creates a dialogue channel backed by a chat completion API
func New(cfg *Config) (dialogue.Channel, error) {
	if cfg == nil {
		return nil, engerr.InvalidArgument("llm config is required")
	}
	if cfg.Model == "" {
		return nil, engerr.InvalidArgument("llm model is required")
	}

	return &client{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Generate implements dialogue.Channel
func (c *client) Generate(ctx context.Context, cred credential.Credential, req *dialogue.GenerateRequest) (string, error) {
	if !cred.Present() {
		return "", engerr.InvalidArgument("credential is required")
	}
	if req == nil {
		return "", engerr.InvalidArgument("generate request is required")
	}

	apiCfg := openai.DefaultConfig(cred.Value)
	if c.baseURL != "" {
		apiCfg.BaseURL = c.baseURL
	}
	if c.httpClient != nil {
		apiCfg.HTTPClient = c.httpClient
	}
	api := openai.NewClientWithConfig(apiCfg)

	resp, err := api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxCounselTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(req),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(req),
			},
		},
	})
	if err != nil {
		return "", engerr.WrapWithCode(err, engerr.CodeRemoteDialogue, "chat completion failed")
	}

	for _, choice := range resp.Choices {
		if text := strings.TrimSpace(choice.Message.Content); text != "" {
			return text, nil
		}
	}

	return "", engerr.RemoteDialoguef("chat completion returned no usable text")
}

func systemPrompt(req *dialogue.GenerateRequest) string {
	var b strings.Builder
	name := req.Label
	if name == "" {
		name = req.ArchetypeID
	}

	fmt.Fprintf(&b, "You are %s, an ancient archwizard speaking inside the minimalist dueling sanctum of Wizard Wars. ", name)
	b.WriteString("Offer a brief, original piece of clever magical counsel in at most two sentences. ")
	b.WriteString("Let your tone carry the wonder of epic fantasy sagas without quoting or plagiarising any of them.")
	if req.Description != "" {
		fmt.Fprintf(&b, " Your nature: %s.", req.Description)
	}
	if len(req.Spells) > 0 {
		fmt.Fprintf(&b, " Spells at your command: %s.", strings.Join(req.Spells, ", "))
	}
	return b.String()
}

func userPrompt(req *dialogue.GenerateRequest) string {
	return fmt.Sprintf("A duelist approaches you. The moment is %q. Speak your line.", req.Trigger)
}
