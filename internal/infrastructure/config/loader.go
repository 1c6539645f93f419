package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/safety-dash/assets"
	appconfig "github.com/doeshing/safety-dash/internal/application/config"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/pkg/filesystem"
	"github.com/doeshing/safety-dash/internal/ports"
)

// EnvConfigPath overrides the config location.
const EnvConfigPath = "SAFETYDASH_CONFIG"

// FileLoader loads YAML configuration from ~/.safetydash/config.yaml
// (overridable via SAFETYDASH_CONFIG). A missing file yields the embedded
// defaults; the loader never writes to disk.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig()
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg = hydrateDefaults(cfg)
	if err := appconfig.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the resolved config location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".safetydash", "config.yaml")
}

// DefaultConfig parses the embedded defaults.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Preferences.DefaultModel == "" && len(cfg.Models) > 0 {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	if cfg.Completion.Endpoint == "" {
		cfg.Completion.Endpoint = domain.DefaultCompletionEndpoint
	}
	if cfg.Completion.SystemPrompt == "" {
		cfg.Completion.SystemPrompt = domain.DefaultSystemPrompt
	}
	if cfg.Completion.TimeoutSeconds == nil {
		seconds := domain.DefaultTimeoutSeconds
		cfg.Completion.TimeoutSeconds = &seconds
	}
	if cfg.Completion.AuthEnvVar == "" {
		cfg.Completion.AuthEnvVar = domain.DefaultAuthEnvVar
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = domain.LogLevelInfo
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
