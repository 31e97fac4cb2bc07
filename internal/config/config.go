// Package config provides server configuration with multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (TRANSPORT, PORT, ...)
//  2. Config file (./storyserver.yaml)
//  3. Default values
//
// The transport selection only decides how the MCP server is mounted (HTTP
// streaming vs stdio) and whether per-call session ids are expected; tool
// behavior never depends on it.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

// Transport identifiers used in Config.Transport.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

var (
	// ErrInvalidTransport indicates an unsupported transport selection.
	ErrInvalidTransport = errors.New("invalid transport")

	// ErrInvalidPort indicates the listening port is out of range.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidStoryDir indicates the story directory is unusable.
	ErrInvalidStoryDir = errors.New("invalid story directory")
)

// Config stores the story server configuration.
type Config struct {
	// Transport selects how MCP is served: "http" (streamable HTTP) or
	// "stdio".
	Transport string `mapstructure:"transport"`

	// Host and Port form the HTTP listen address. Ignored for stdio.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Stateless disables HTTP session tracking; per-call session ids are
	// then absent from diagnostics and story footers.
	Stateless bool `mapstructure:"stateless"`

	// StoryDir is where story markdown files are written and listed.
	StoryDir string `mapstructure:"story_dir"`

	// Logging configuration. LogFile may be empty to log to stderr only.
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Load reads configuration from defaults, an optional ./storyserver.yaml, and
// environment variables, then validates the result (fail-fast).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("storyserver")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults and env apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults", "config_name", "storyserver.yaml")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("transport", TransportHTTP)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8082)
	v.SetDefault("stateless", false)
	v.SetDefault("story_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "story_server.log")
}

func bindEnvVariables(v *viper.Viper) {
	bindings := map[string]string{
		"transport": "TRANSPORT",
		"host":      "HOST",
		"port":      "PORT",
		"stateless": "STATELESS",
		"story_dir": "STORY_DIR",
		"log_level": "LOG_LEVEL",
		"log_file":  "LOG_FILE",
	}
	for key, envVar := range bindings {
		// BindEnv only errors on empty arguments.
		_ = v.BindEnv(key, envVar)
	}
}

// Validate checks the configuration and returns a sentinel-wrapped error for
// the first problem found.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidTransport, c.Transport, TransportHTTP, TransportStdio)
	}

	if c.Transport == TransportHTTP && (c.Port < 1 || c.Port > 65535) {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	if c.StoryDir == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidStoryDir)
	}
	if info, err := os.Stat(c.StoryDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q is not an existing directory", ErrInvalidStoryDir, c.StoryDir)
	}

	return nil
}
