package domain

// Config mirrors ~/.safetydash/config.yaml. It never holds the API credential.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Preferences         Preferences        `yaml:"preferences"`
	Completion          CompletionSettings `yaml:"completion"`
	Models              []ModelDefinition  `yaml:"models"`
	Logging             LoggingSettings    `yaml:"logging"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel   string `yaml:"default_model"`
	DefaultSection string `yaml:"default_section"`
	MarkdownStyle  string `yaml:"markdown_style"`
}

// CompletionSettings configures the outbound chat-completion call.
type CompletionSettings struct {
	Endpoint       string `yaml:"endpoint"`
	SystemPrompt   string `yaml:"system_prompt"`
	TimeoutSeconds *int   `yaml:"timeout_seconds,omitempty"`
	MaxTokens      int    `yaml:"max_tokens,omitempty"`
	AuthEnvVar     string `yaml:"auth_env_var"`
}

// LoggingSettings controls the structured logger.
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
