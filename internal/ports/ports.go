// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The dashboard service and views depend on these
// abstractions, while the concrete catalog, dataset, config and completion
// client live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/doeshing/safety-dash/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.safetydash/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// PromptCatalog exposes the fixed, ordered sample prompts.
type PromptCatalog interface {
	Version() string
	Categories() []domain.Category
	PromptsFor(domain.Category) []domain.PromptEntry
	Lookup(category domain.Category, label string) (domain.PromptEntry, bool)
}

// DatasetSource provides the constant tables behind the static sections.
type DatasetSource interface {
	Dataset() domain.Dataset
}

// CompletionClient performs a single chat-completion exchange.
// An empty credential must fail with *domain.AuthError without any network call.
type CompletionClient interface {
	Complete(ctx context.Context, req domain.CompletionRequest, credential domain.Credential) (domain.CompletionResult, error)
}

// CredentialPrompter reads a secret from the user without echoing it.
type CredentialPrompter interface {
	ReadCredential(prompt string) (domain.Credential, error)
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, discard).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
