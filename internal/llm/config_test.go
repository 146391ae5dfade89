package llm

import "testing"

func TestConfigFromEnv_ProviderOverride(t *testing.T) {
	t.Setenv("KANAFLASH_LLM_PROVIDER", "anthropic")
	t.Setenv("KANAFLASH_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("KANAFLASH_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("unexpected key: %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("unexpected model: %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("KANAFLASH_LLM_PROVIDER", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini default, got %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llama-at-home"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("unexpected key: %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_FallsThrough(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %q", cfg.Provider)
	}
}
