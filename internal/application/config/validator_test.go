package config

import (
	"testing"

	"github.com/doeshing/safety-dash/internal/domain"
)

func seconds(n int) *int {
	return &n
}

func validConfig() domain.Config {
	return domain.Config{
		Preferences: domain.Preferences{DefaultModel: "GPT-4", DefaultSection: "overview"},
		Completion:  domain.CompletionSettings{Endpoint: domain.DefaultCompletionEndpoint, TimeoutSeconds: seconds(60)},
		Models:      []domain.ModelDefinition{{Name: "GPT-4", ModelID: "gpt-4"}},
		Logging:     domain.LoggingSettings{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "no models", mutate: func(c *domain.Config) { c.Models = nil }, wantErr: true},
		{name: "missing model id", mutate: func(c *domain.Config) { c.Models[0].ModelID = "" }, wantErr: true},
		{name: "duplicate model", mutate: func(c *domain.Config) { c.Models = append(c.Models, c.Models[0]) }, wantErr: true},
		{name: "unknown default", mutate: func(c *domain.Config) { c.Preferences.DefaultModel = "GPT-5" }, wantErr: true},
		{name: "unknown section", mutate: func(c *domain.Config) { c.Preferences.DefaultSection = "settings" }, wantErr: true},
		{name: "bad endpoint", mutate: func(c *domain.Config) { c.Completion.Endpoint = "ftp://x" }, wantErr: true},
		{name: "bad model endpoint", mutate: func(c *domain.Config) { c.Models[0].Endpoint = "https://" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *domain.Config) { c.Completion.TimeoutSeconds = seconds(0) }},
		{name: "unset timeout", mutate: func(c *domain.Config) { c.Completion.TimeoutSeconds = nil }},
		{name: "negative timeout", mutate: func(c *domain.Config) { c.Completion.TimeoutSeconds = seconds(-1) }, wantErr: true},
		{name: "bad log level", mutate: func(c *domain.Config) { c.Logging.Level = "trace-ish" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
