// Package mnemonic generates memory aids for kana characters via an LLM
// provider. Generation is best-effort: callers always get a usable string.
package mnemonic

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/llm"
)

// Fallback is shown when the provider is unavailable or returns garbage.
const Fallback = "Keep practicing! You'll get this one soon."

const systemPrompt = "You are a friendly Japanese tutor helping a beginner memorize kana. Answer with valid JSON only."

// mnemonicSchema constrains the model output to a single string field.
var mnemonicSchema = &llm.Schema{
	Name:        "kana-mnemonic",
	Description: "A one-sentence memory aid for a kana character",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "One simple sentence linking the character's shape or sound to its reading",
			},
		},
		"required":             []any{"mnemonic"},
		"additionalProperties": false,
	},
}

type mnemonicPayload struct {
	Mnemonic string `json:"mnemonic"`
}

// Service generates and caches mnemonics. Safe for concurrent use.
type Service struct {
	provider llm.Provider

	mu    sync.Mutex
	cache map[string]string // entry ID -> mnemonic
}

// NewService creates a Service backed by the given provider. A nil provider
// is allowed; Generate then always returns the fallback text.
func NewService(provider llm.Provider) *Service {
	return &Service{
		provider: provider,
		cache:    make(map[string]string),
	}
}

// Generate returns a mnemonic for the entry. It never fails: provider
// errors and malformed responses degrade to the fallback text. Successful
// results are cached per entry for the lifetime of the process.
func (s *Service) Generate(ctx context.Context, entry kana.Entry) string {
	s.mu.Lock()
	if cached, ok := s.cache[entry.ID]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	if s.provider == nil {
		return Fallback
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Prompt: fmt.Sprintf(
			`Create a short, fun, and easy-to-remember mnemonic for the Japanese character %q (pronounced %q). Explain it in one simple sentence.`,
			entry.Char, entry.Romaji,
		),
		Schema:      mnemonicSchema,
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		return Fallback
	}

	var payload mnemonicPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil || payload.Mnemonic == "" {
		return Fallback
	}

	s.mu.Lock()
	s.cache[entry.ID] = payload.Mnemonic
	s.mu.Unlock()

	return payload.Mnemonic
}
