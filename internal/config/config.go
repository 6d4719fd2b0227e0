package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"citysearch/internal/citydata"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Endpoint   string     `toml:"endpoint"`
	SourceFile string     `toml:"source_file,omitempty"` // read suggestions from disk instead of Endpoint
	Resolver   string     `toml:"resolver"`              // "store" or "remote"
	Timeout    Duration   `toml:"http_timeout"`          // 0 means no timeout
	Log        LogConfig  `toml:"log"`
	UISettings UISettings `toml:"ui"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Dir        string `toml:"dir,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxVisible int  `toml:"max_visible"` // suggestion rows shown at once
	NoColor    bool `toml:"no_color"`
	Mouse      bool `toml:"mouse"`
}

// Duration is a time.Duration written as a string such as "30s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &configService{
		filePath: filepath.Join(configDir, "citysearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it is absent
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if c.Endpoint == "" && c.SourceFile == "" {
		return errors.New("endpoint or source_file must be set")
	}
	switch c.Resolver {
	case citydata.ResolverStore, citydata.ResolverRemote:
	default:
		return fmt.Errorf("resolver must be %q or %q, got %q", citydata.ResolverStore, citydata.ResolverRemote, c.Resolver)
	}
	if c.Timeout.Duration < 0 {
		return errors.New("http_timeout must not be negative")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", c.Log.Format)
	}
	if c.UISettings.MaxVisible < 1 {
		return errors.New("ui.max_visible must be at least 1")
	}
	return nil
}

// DefaultLogDir is where logs go when the config does not name a directory
func DefaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "citysearch")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Endpoint: citydata.DefaultEndpoint,
		Resolver: citydata.ResolverStore,
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		UISettings: UISettings{
			MaxVisible: 8,
			Mouse:      true,
		},
	}
}

// NewSource builds the suggestion source the config points at
func (c *Config) NewSource() citydata.Source {
	if c.SourceFile != "" {
		return &citydata.FileSource{Path: c.SourceFile}
	}
	return citydata.NewHTTPSource(c.Endpoint, c.Timeout.Duration)
}
