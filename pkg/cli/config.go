// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/toyinlola/fmtai/pkg/ai"
	"github.com/toyinlola/fmtai/pkg/changes"
	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = ".fmtai.yml"

// EndpointEnv overrides ai.endpoint when set.
const EndpointEnv = "DEEPSEEK_API_URL"

// Config represents the .fmtai.yml configuration file.
type Config struct {
	Version string                  `yaml:"version"`
	AI      AIConfig                `yaml:"ai"`
	Format  interfaces.FormatConfig `yaml:"format"`
	Diff    DiffConfig              `yaml:"diff"`
	Cache   CacheConfig             `yaml:"cache"`
	Batch   BatchConfig             `yaml:"batch"`
	Server  ServerConfig            `yaml:"server"`
	Log     LogConfig               `yaml:"log"`
}

// AIConfig holds configuration for the chat-completion provider.
type AIConfig struct {
	Provider    string        `yaml:"provider"`
	Endpoint    string        `yaml:"endpoint"`
	Model       string        `yaml:"model"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
}

// APIKey reads the credential from the configured environment variable.
func (a AIConfig) APIKey() string {
	return strings.TrimSpace(os.Getenv(a.APIKeyEnv))
}

// ProviderConfig converts the section into an ai.ProviderConfig.
func (a AIConfig) ProviderConfig() ai.ProviderConfig {
	return ai.ProviderConfig{
		Endpoint: a.Endpoint,
		Model:    a.Model,
		APIKey:   a.APIKey(),
		Type:     ai.ProviderType(a.Provider),
	}
}

// DiffConfig controls change classification and diff output.
type DiffConfig struct {
	Mode    string `yaml:"mode"`
	Context int    `yaml:"context"`
}

// CacheConfig sizes the in-memory result cache. Zero disables it.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// BatchConfig controls multi-file runs.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// ServerConfig controls the HTTP endpoint.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig optionally mirrors logs to a rotated file.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// LoadConfig reads and parses a .fmtai.yml configuration file.
// If path is empty, it looks for .fmtai.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{Version: "1", Format: interfaces.DefaultFormatConfig()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cli: config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the documented
// .fmtai.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1", Format: interfaces.DefaultFormatConfig()}
	applyDefaults(cfg)
	return cfg
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := changes.ParseMode(c.Diff.Mode); err != nil {
		return err
	}
	if c.AI.Provider != string(ai.ProviderOpenAICompatible) {
		return fmt.Errorf("ai.provider: unsupported provider %q", c.AI.Provider)
	}
	return nil
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = string(ai.ProviderOpenAICompatible)
	}
	if env := strings.TrimSpace(os.Getenv(EndpointEnv)); env != "" {
		cfg.AI.Endpoint = env
	}
	if cfg.AI.Endpoint == "" {
		cfg.AI.Endpoint = ai.DefaultEndpoint
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = ai.DefaultModel
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = "DEEPSEEK_API_KEY"
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 60 * time.Second
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = ai.DefaultTemperature
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = ai.DefaultMaxTokens
	}
	if cfg.Diff.Mode == "" {
		cfg.Diff.Mode = string(changes.ModePositional)
	}
	if cfg.Diff.Context == 0 {
		cfg.Diff.Context = 3
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = 4
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Log.File != "" {
		if cfg.Log.MaxSizeMB == 0 {
			cfg.Log.MaxSizeMB = 15
		}
		if cfg.Log.MaxBackups == 0 {
			cfg.Log.MaxBackups = 3
		}
		if cfg.Log.MaxAgeDays == 0 {
			cfg.Log.MaxAgeDays = 28
		}
	}
}

// LoadDotEnv loads environment variables from path. A missing file is not an
// error so that .env files remain optional. Variables already set win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cli: loading %s: %w", path, err)
	}
	slog.Debug("loaded environment file", "path", path)
	return nil
}
