package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveConfigPath(t *testing.T) {
	// Save and restore env
	orig := os.Getenv("DNSLY_CONFIG")
	defer os.Setenv("DNSLY_CONFIG", orig)

	tests := []struct {
		name     string
		flag     string
		envValue string
		want     string
	}{
		{"flag takes precedence", "/path/from/flag", "/path/from/env", "/path/from/flag"},
		{"env when no flag", "", "/path/from/env", "/path/from/env"},
		{"empty when neither", "", "", ""},
		{"whitespace flag", "  ", "/path/from/env", "/path/from/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("DNSLY_CONFIG", tt.envValue)
			got := ResolveConfigPath(tt.flag)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Resolver.Servers) != 0 {
		t.Errorf("expected no configured servers, got %v", cfg.Resolver.Servers)
	}
	if cfg.Resolver.Port != 53 {
		t.Errorf("expected port 53, got %d", cfg.Resolver.Port)
	}
	if cfg.Resolver.Timeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Resolver.Timeout())
	}
	if !cfg.Resolver.TCPFallback {
		t.Error("expected TCPFallback true")
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected level INFO, got %s", cfg.Logging.Level)
	}
	if cfg.API.Host != "127.0.0.1" || cfg.API.Port != 8053 {
		t.Errorf("unexpected API defaults: %s:%d", cfg.API.Host, cfg.API.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dnsly.json")
	content := `{
		"resolver": {"servers": ["1.1.1.1"], "port": 5353, "timeout_seconds": 2},
		"logging": {"level": "debug"},
		"api": {"host": "0.0.0.0", "port": 9000, "api_key": "secret"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Resolver.Servers) != 1 || cfg.Resolver.Servers[0] != "1.1.1.1" {
		t.Errorf("unexpected servers: %v", cfg.Resolver.Servers)
	}
	if cfg.Resolver.Port != 5353 {
		t.Errorf("expected port 5353, got %d", cfg.Resolver.Port)
	}
	if cfg.Resolver.Timeout() != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.Resolver.Timeout())
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected level normalized to DEBUG, got %s", cfg.Logging.Level)
	}
	if cfg.API.APIKey != "secret" {
		t.Errorf("unexpected api key: %s", cfg.API.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/dnsly.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bad server", func(c *Config) { c.Resolver.Servers = []string{"not-an-ip"} }, true},
		{"hostname server", func(c *Config) { c.Resolver.Servers = []string{"dns.example.com"} }, true},
		{"port too low", func(c *Config) { c.Resolver.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Resolver.Port = 70000 }, true},
		{"api port invalid", func(c *Config) { c.API.Port = -1 }, true},
		{"ipv6 server ok", func(c *Config) { c.Resolver.Servers = []string{"2606:4700:4700::1111"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_TimeoutClamped(t *testing.T) {
	cfg := Default()
	cfg.Resolver.TimeoutSeconds = 10000
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Resolver.TimeoutSeconds != 300 {
		t.Errorf("expected timeout clamped to 300, got %d", cfg.Resolver.TimeoutSeconds)
	}

	cfg = Default()
	cfg.Resolver.TimeoutSeconds = -5
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Resolver.TimeoutSeconds != 1 {
		t.Errorf("expected timeout clamped to 1, got %d", cfg.Resolver.TimeoutSeconds)
	}
}
