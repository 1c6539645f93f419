package domain

import "time"

// Completion defaults
const (
	// DefaultCompletionEndpoint is the OpenAI-compatible chat-completions URL
	DefaultCompletionEndpoint = "https://api.openai.com/v1/chat/completions"
	// DefaultSystemPrompt frames every prompt test
	DefaultSystemPrompt = "You are a helpful AI assistant focused on safety."
	// DefaultTimeoutSeconds bounds a single completion call
	DefaultTimeoutSeconds = 60
	// DefaultAuthEnvVar is read by non-interactive commands
	DefaultAuthEnvVar = "SAFETYDASH_API_KEY"
	// FallbackAuthEnvVar is read when DefaultAuthEnvVar is unset
	FallbackAuthEnvVar = "OPENAI_API_KEY"
	// AnthropicVersion is sent to Anthropic Messages endpoints
	AnthropicVersion = "2023-06-01"
	// DefaultAnthropicMaxTokens is required by the Anthropic Messages API
	DefaultAnthropicMaxTokens = 1024
)

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout is the transport-level ceiling for HTTP requests
	DefaultHTTPClientTimeout = 120 * time.Second
)

// Display defaults
const (
	// DefaultMarkdownStyle renders markdown without terminal colour detection
	DefaultMarkdownStyle = "notty"
	// DefaultRenderWidth is used when the terminal size is unknown
	DefaultRenderWidth = 80
	// MissingCredentialMessage is shown in Prompt Testing without a key
	MissingCredentialMessage = "Please enter your API key in the sidebar to test prompts."
	// CredentialConfiguredMessage confirms a key was accepted
	CredentialConfiguredMessage = "API Key configured!"
)

// Log levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
