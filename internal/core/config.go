package core

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds global configuration for webfetch.
type Config struct {
	Fetch  FetchConfig  `json:"fetch"`
	Server ServerConfig `json:"server"`
}

// FetchConfig holds settings for outbound HTTP requests.
type FetchConfig struct {
	// UserAgent identifies this server on every outbound request.
	UserAgent string `json:"user_agent"`
	// RequestTimeoutMS bounds a single fetch; 0 keeps the client default.
	RequestTimeoutMS int `json:"request_timeout_ms"`
	// MaxResponseBytes caps the decoded body size; 0 disables the cap.
	MaxResponseBytes int64 `json:"max_response_bytes"`
}

// ServerConfig holds settings for the SSE transport.
type ServerConfig struct {
	// Host is the listen address; sessions are trusted, so loopback only.
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			UserAgent:        "webfetch (github.com/Fuabioo/webfetch)",
			RequestTimeoutMS: 0,
			MaxResponseBytes: 10 * 1024 * 1024, // 10MiB
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
	}
}

// LoadConfig loads configuration from the JSON file named by the
// WEBFETCH_CONFIG environment variable, falling back to defaults when
// no file is configured. Environment variables override both file and
// default values.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if configPath := os.Getenv("WEBFETCH_CONFIG"); configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv("WEBFETCH_USER_AGENT"); ok {
		cfg.Fetch.UserAgent = val
	}

	if val, ok := os.LookupEnv("WEBFETCH_TIMEOUT_MS"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid WEBFETCH_TIMEOUT_MS: %w", err)
		}
		cfg.Fetch.RequestTimeoutMS = parsed
	}

	if val, ok := os.LookupEnv("WEBFETCH_MAX_RESPONSE_BYTES"); ok {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid WEBFETCH_MAX_RESPONSE_BYTES: %w", err)
		}
		cfg.Fetch.MaxResponseBytes = parsed
	}

	if val, ok := os.LookupEnv("WEBFETCH_PORT"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid WEBFETCH_PORT: %w", err)
		}
		cfg.Server.Port = parsed
	}

	return nil
}

// ListenAddr returns the host:port pair the SSE transport binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
