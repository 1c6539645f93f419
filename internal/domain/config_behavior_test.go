package domain_test

import (
	"testing"
	"time"

	"github.com/doeshing/safety-dash/internal/domain"
)

func testConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "GPT-4"},
		Completion:  domain.CompletionSettings{Endpoint: "https://gateway.example/v1/chat/completions"},
		Models: []domain.ModelDefinition{
			{Name: "GPT-4", ModelID: "gpt-4"},
			{Name: "Claude 3 Opus", ModelID: "claude-3-opus-20240229", Endpoint: "https://api.anthropic.com/v1/messages"},
		},
	}
}

// TestConfig_GetDefaultModel tests retrieving the default model
func TestConfig_GetDefaultModel(t *testing.T) {
	tests := []struct {
		name        string
		defaultName string
		wantError   bool
		wantModelID string
	}{
		{name: "returns default model successfully", defaultName: "GPT-4", wantModelID: "gpt-4"},
		{name: "returns error when default model not found", defaultName: "nonexistent", wantError: true},
		{name: "returns error when no default model configured", defaultName: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Preferences.DefaultModel = tt.defaultName

			model, err := cfg.GetDefaultModel()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got model %+v", model)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if model.ModelID != tt.wantModelID {
				t.Errorf("ModelID = %s, want %s", model.ModelID, tt.wantModelID)
			}
		})
	}
}

func TestConfig_EndpointFor(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name string
		cfg  domain.Config
		desc domain.ModelDescriptor
		want string
	}{
		{
			name: "shared endpoint",
			cfg:  cfg,
			desc: domain.ModelDescriptor{DisplayName: "GPT-4", APIID: "gpt-4"},
			want: "https://gateway.example/v1/chat/completions",
		},
		{
			name: "per-model override",
			cfg:  cfg,
			desc: domain.ModelDescriptor{DisplayName: "Claude 3 Opus", APIID: "claude-3-opus-20240229"},
			want: "https://api.anthropic.com/v1/messages",
		},
		{
			name: "built-in default",
			cfg:  domain.Config{},
			desc: domain.ModelDescriptor{DisplayName: "GPT-4", APIID: "gpt-4"},
			want: domain.DefaultCompletionEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.EndpointFor(tt.desc); got != tt.want {
				t.Errorf("EndpointFor() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConfig_Descriptors(t *testing.T) {
	cfg := testConfig()
	got := cfg.Descriptors()
	if len(got) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(got))
	}
	if got[0].DisplayName != "GPT-4" || got[1].APIID != "claude-3-opus-20240229" {
		t.Errorf("unexpected descriptors: %+v", got)
	}
}

func TestConfig_Defaults(t *testing.T) {
	var cfg domain.Config

	if got := cfg.GetSystemPrompt(); got != domain.DefaultSystemPrompt {
		t.Errorf("GetSystemPrompt() = %q", got)
	}
	if got := cfg.GetDefaultSection(); got != domain.SectionOverview {
		t.Errorf("GetDefaultSection() = %v", got)
	}
	if got := cfg.GetMarkdownStyle(); got != domain.DefaultMarkdownStyle {
		t.Errorf("GetMarkdownStyle() = %q", got)
	}

	if got := cfg.GetTimeout(); got != domain.DefaultTimeoutSeconds*time.Second {
		t.Errorf("unset GetTimeout() = %v", got)
	}
	seconds := 15
	cfg.Completion.TimeoutSeconds = &seconds
	if got := cfg.GetTimeout(); got != 15*time.Second {
		t.Errorf("GetTimeout() = %v", got)
	}
	seconds = 0
	if got := cfg.GetTimeout(); got != 0 {
		t.Errorf("zero timeout should disable, got %v", got)
	}
	seconds = -1
	if got := cfg.GetTimeout(); got != 0 {
		t.Errorf("negative timeout should disable, got %v", got)
	}

	cfg.Preferences.DefaultSection = "prompt-testing"
	if got := cfg.GetDefaultSection(); got != domain.SectionPromptTesting {
		t.Errorf("GetDefaultSection() = %v", got)
	}
}

func TestCredentialEnvVars(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		want   []string
	}{
		{"default", "", []string{"SAFETYDASH_API_KEY", "OPENAI_API_KEY"}},
		{"custom", "MY_KEY", []string{"MY_KEY", "OPENAI_API_KEY"}},
		{"fallback only", "OPENAI_API_KEY", []string{"OPENAI_API_KEY"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Config{Completion: domain.CompletionSettings{AuthEnvVar: tt.envVar}}
			got := cfg.CredentialEnvVars()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
