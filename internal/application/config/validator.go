package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/safety-dash/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if len(cfg.Models) == 0 {
		return errors.New("at least one model must be configured")
	}
	if err := validateModels(cfg.Models); err != nil {
		return err
	}
	if cfg.Preferences.DefaultModel != "" {
		if _, ok := cfg.FindModelByName(cfg.Preferences.DefaultModel); !ok {
			return fmt.Errorf("default model %s not found in models list", cfg.Preferences.DefaultModel)
		}
	}
	if cfg.Preferences.DefaultSection != "" {
		if _, err := domain.ParseSection(cfg.Preferences.DefaultSection); err != nil {
			return fmt.Errorf("preferences.default_section: %w", err)
		}
	}
	if err := validateCompletion(cfg.Completion); err != nil {
		return err
	}
	return validateLogging(cfg.Logging)
}

func validateModels(models []domain.ModelDefinition) error {
	seen := make(map[string]bool, len(models))
	for i, model := range models {
		if model.Name == "" || model.ModelID == "" {
			return fmt.Errorf("models[%d]: name and model_id are required", i)
		}
		if seen[model.Name] {
			return fmt.Errorf("models[%d]: duplicate name %s", i, model.Name)
		}
		seen[model.Name] = true
		if model.Endpoint != "" {
			if err := validateEndpoint(model.Endpoint); err != nil {
				return fmt.Errorf("models[%d].endpoint: %w", i, err)
			}
		}
	}
	return nil
}

func validateCompletion(c domain.CompletionSettings) error {
	if c.Endpoint != "" {
		if err := validateEndpoint(c.Endpoint); err != nil {
			return fmt.Errorf("completion.endpoint: %w", err)
		}
	}
	if c.TimeoutSeconds != nil && *c.TimeoutSeconds < 0 {
		return fmt.Errorf("completion.timeout_seconds must be >= 0")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("completion.max_tokens must be >= 0")
	}
	return nil
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}

func validateLogging(l domain.LoggingSettings) error {
	switch strings.ToLower(l.Level) {
	case "", domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError:
		return nil
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", l.Level)
	}
}
