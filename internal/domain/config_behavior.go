package domain

import (
	"fmt"
	"time"
)

// GetDefaultModel retrieves the default model definition from configuration.
// Returns an error if the default model is not found.
func (c *Config) GetDefaultModel() (ModelDefinition, error) {
	if c.Preferences.DefaultModel == "" {
		return ModelDefinition{}, fmt.Errorf("no default model configured")
	}

	for _, model := range c.Models {
		if model.Name == c.Preferences.DefaultModel {
			return model, nil
		}
	}

	return ModelDefinition{}, fmt.Errorf("default model %s not found in configuration", c.Preferences.DefaultModel)
}

// FindModelByName searches for a model by its display name.
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// FindModelByDescriptor resolves the definition behind a picker selection.
func (c *Config) FindModelByDescriptor(d ModelDescriptor) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == d.DisplayName && model.ModelID == d.APIID {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// Descriptors returns the model picker entries in configured order.
func (c *Config) Descriptors() []ModelDescriptor {
	out := make([]ModelDescriptor, 0, len(c.Models))
	for _, model := range c.Models {
		out = append(out, model.Descriptor())
	}
	return out
}

// EndpointFor returns the per-model endpoint, falling back to the shared one.
func (c *Config) EndpointFor(d ModelDescriptor) string {
	if model, ok := c.FindModelByDescriptor(d); ok && model.Endpoint != "" {
		return model.Endpoint
	}
	if c.Completion.Endpoint != "" {
		return c.Completion.Endpoint
	}
	return DefaultCompletionEndpoint
}

// GetDefaultSection returns the section to open on start.
func (c *Config) GetDefaultSection() Section {
	section, err := ParseSection(c.Preferences.DefaultSection)
	if err != nil {
		return SectionOverview
	}
	return section
}

// GetSystemPrompt returns the safety framing sent with every test.
func (c *Config) GetSystemPrompt() string {
	if c.Completion.SystemPrompt == "" {
		return DefaultSystemPrompt
	}
	return c.Completion.SystemPrompt
}

// GetTimeout returns the completion timeout. Unset means the default;
// an explicit zero disables it.
func (c *Config) GetTimeout() time.Duration {
	if c.Completion.TimeoutSeconds == nil {
		return DefaultTimeoutSeconds * time.Second
	}
	if *c.Completion.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(*c.Completion.TimeoutSeconds) * time.Second
}

// GetMarkdownStyle returns the glamour style name used for bullet lists.
func (c *Config) GetMarkdownStyle() string {
	if c.Preferences.MarkdownStyle == "" {
		return DefaultMarkdownStyle
	}
	return c.Preferences.MarkdownStyle
}

// CredentialEnvVars lists the environment variables consulted for the API key,
// in priority order.
func (c *Config) CredentialEnvVars() []string {
	primary := c.Completion.AuthEnvVar
	if primary == "" {
		primary = DefaultAuthEnvVar
	}
	if primary == FallbackAuthEnvVar {
		return []string{primary}
	}
	return []string{primary, FallbackAuthEnvVar}
}
