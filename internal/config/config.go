// Package config loads the dashboard configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultServerURL is where the encryption service listens when run locally.
	DefaultServerURL = "http://127.0.0.1:5000"

	// DefaultReleaseDelay is how long a received archive stays downloadable.
	DefaultReleaseDelay = 60 * time.Second
)

// Config holds all dashboard configuration.
type Config struct {
	// ServerURL is the base URL of the encryption service.
	ServerURL string `yaml:"server_url"`

	// ReleaseDelay is the lifetime of a stored artifact, e.g. "60s".
	ReleaseDelay string `yaml:"release_delay"`

	// RequestTimeout bounds a single request. Empty or "0" means no timeout.
	RequestTimeout string `yaml:"request_timeout"`

	// DownloadDir is where the CLI writes archives and decrypted members.
	DownloadDir string `yaml:"download_dir"`

	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables file logging
}

// UIConfig configures the desktop dashboard.
type UIConfig struct {
	Theme string `yaml:"theme"` // system, light, dark
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"system", "light", "dark"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      DefaultServerURL,
		ReleaseDelay:   DefaultReleaseDelay.String(),
		RequestTimeout: "0",
		DownloadDir:    ".",
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			Theme: "system",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "aienc.yaml"
	}
	return filepath.Join(dir, "aienc", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AIENC_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("AIENC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// GetReleaseDelay returns the artifact lifetime as a duration.
func (c *Config) GetReleaseDelay() time.Duration {
	d, err := time.ParseDuration(c.ReleaseDelay)
	if err != nil || d <= 0 {
		return DefaultReleaseDelay
	}
	return d
}

// GetRequestTimeout returns the per-request timeout. Zero means none.
func (c *Config) GetRequestTimeout() time.Duration {
	s := strings.TrimSpace(c.RequestTimeout)
	if s == "" || s == "0" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid server_url %q: want http(s)://host[:port]", c.ServerURL)
	}

	if c.ReleaseDelay != "" {
		if d, err := time.ParseDuration(c.ReleaseDelay); err != nil || d <= 0 {
			return fmt.Errorf("invalid release_delay %q", c.ReleaseDelay)
		}
	}

	if s := strings.TrimSpace(c.RequestTimeout); s != "" && s != "0" {
		if d, err := time.ParseDuration(s); err != nil || d < 0 {
			return fmt.Errorf("invalid request_timeout %q", c.RequestTimeout)
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	validTheme := c.UI.Theme == ""
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
