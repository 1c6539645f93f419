// Package domain defines core business entities and value objects for the
// safety dashboard.
//
// This file contains the model and completion types used by the prompt
// testing flow. The domain layer is independent of infrastructure concerns.
package domain

import (
	"strings"
	"time"
)

// ModelDefinition describes a selectable model declared in the config file.
type ModelDefinition struct {
	Name     string `yaml:"name"`
	ModelID  string `yaml:"model_id"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Descriptor returns the immutable display/API pair for the definition.
func (m ModelDefinition) Descriptor() ModelDescriptor {
	return ModelDescriptor{DisplayName: m.Name, APIID: m.ModelID}
}

// ModelDescriptor is the pair shown in the model picker and sent upstream.
type ModelDescriptor struct {
	DisplayName string
	APIID       string
}

// IsZero reports whether no model has been selected.
func (d ModelDescriptor) IsZero() bool {
	return d.DisplayName == "" && d.APIID == ""
}

// ProviderKind identifies the wire dialect of a chat-completion endpoint.
type ProviderKind string

const (
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindAnthropic ProviderKind = "anthropic"
)

// ProviderKindFor picks the wire dialect from the endpoint URL. Everything
// that is not an Anthropic Messages endpoint speaks the OpenAI format.
func ProviderKindFor(endpoint string) ProviderKind {
	lower := strings.ToLower(endpoint)
	if strings.Contains(lower, "anthropic.com") || strings.HasSuffix(lower, "/v1/messages") {
		return ProviderKindAnthropic
	}
	return ProviderKindOpenAI
}

// PromptMessage follows the role/content pair required by chat APIs.
type PromptMessage struct {
	Role    string
	Content string
}

// CompletionRequest is built per invocation and not retained.
type CompletionRequest struct {
	ID           string
	ModelID      string
	Endpoint     string
	SystemPrompt string
	UserPrompt   string
}

// Messages renders the request as the system/user message pair.
func (r CompletionRequest) Messages() []PromptMessage {
	messages := make([]PromptMessage, 0, 2)
	if r.SystemPrompt != "" {
		messages = append(messages, PromptMessage{Role: "system", Content: r.SystemPrompt})
	}
	return append(messages, PromptMessage{Role: "user", Content: r.UserPrompt})
}

// CompletionResult is the successful outcome of a single completion call.
// Elapsed is measured by the client from issuance to receipt.
type CompletionResult struct {
	Text    string
	Elapsed time.Duration
}

// ElapsedMs returns the elapsed wall-clock time in whole milliseconds.
func (r CompletionResult) ElapsedMs() int64 {
	return r.Elapsed.Milliseconds()
}

// TestReport bundles everything displayed after a successful prompt test.
type TestReport struct {
	RequestID string
	Prompt    PromptEntry
	Model     ModelDescriptor
	Result    CompletionResult
	Metrics   Metrics
}
