// Package config defines the dnsly configuration and its file loading.
//
// Configuration is optional: with no file the defaults query the system
// resolver with a five second timeout. A JSON file can be supplied with
// --config or the DNSLY_CONFIG environment variable; command-line flags
// override whatever the file says.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/jroosing/dnsly/internal/helpers"
)

// Resolver timeout bounds, in seconds.
const (
	DefaultTimeoutSeconds = 5
	minTimeoutSeconds     = 1
	maxTimeoutSeconds     = 300
)

// ResolverConfig contains nameserver settings for the DNS client.
type ResolverConfig struct {
	// Servers are nameserver IPs. Empty means use the system resolver
	// configuration. Only the first server is queried; this tool makes a
	// single query attempt per lookup.
	Servers []string `json:"servers"`
	Port    int      `json:"port"`
	// TimeoutSeconds bounds each query. Clamped to [1, 300].
	TimeoutSeconds int `json:"timeout_seconds"`
	// TCPFallback retries over TCP when a UDP response is truncated.
	TCPFallback bool `json:"tcp_fallback"`
}

// Timeout returns the query timeout as a duration.
func (r ResolverConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// LoggingConfig contains diagnostic logging settings.
type LoggingConfig struct {
	Level string `json:"level"`
	JSON  bool   `json:"json"`
}

// APIConfig contains settings for the optional HTTP API (dnsly serve).
type APIConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// Config is the full dnsly configuration.
type Config struct {
	Resolver ResolverConfig `json:"resolver"`
	Logging  LoggingConfig  `json:"logging"`
	API      APIConfig      `json:"api"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Resolver: ResolverConfig{
			Port:           53,
			TimeoutSeconds: DefaultTimeoutSeconds,
			TCPFallback:    true,
		},
		Logging: LoggingConfig{Level: "INFO"},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8053,
		},
	}
}

// ResolveConfigPath returns the config file path to use: the flag value if
// set, otherwise the DNSLY_CONFIG environment variable, otherwise empty.
func ResolveConfigPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("DNSLY_CONFIG"))
}

// Load reads a configuration file. An empty path yields the defaults.
// The file contents are layered over the defaults, then validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	for _, s := range cfg.Resolver.Servers {
		if net.ParseIP(s) == nil {
			return fmt.Errorf("resolver.servers: %q is not an IP address", s)
		}
	}
	if cfg.Resolver.Port <= 0 || cfg.Resolver.Port > 65535 {
		return errors.New("resolver.port must be 1..65535")
	}
	if cfg.Resolver.TimeoutSeconds == 0 {
		cfg.Resolver.TimeoutSeconds = DefaultTimeoutSeconds
	}
	cfg.Resolver.TimeoutSeconds = helpers.ClampInt(
		cfg.Resolver.TimeoutSeconds, minTimeoutSeconds, maxTimeoutSeconds)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}
	return nil
}
