package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.DatabasePath != "./data/lunar.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "./data/lunar.db")
	}
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled = false, want true")
	}
	if cfg.MaxRangeDays != 90 {
		t.Errorf("MaxRangeDays = %d, want 90", cfg.MaxRangeDays)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("CACHE_ENABLED", "false")
	os.Setenv("MAX_RANGE_DAYS", "31")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.CacheEnabled {
		t.Error("CacheEnabled = true, want false")
	}
	if cfg.MaxRangeDays != 31 {
		t.Errorf("MaxRangeDays = %d, want 31", cfg.MaxRangeDays)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv()
	os.Setenv("MAX_RANGE_DAYS", "1000")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() accepted MAX_RANGE_DAYS=1000")
	}
}

func TestGetEnvBool(t *testing.T) {
	clearEnv()
	defer clearEnv()

	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"0", true, false},
		{"1", false, true},
		{"TRUE", false, true},
		{"nope", true, true}, // unparseable falls back
	}
	for _, tt := range tests {
		os.Setenv("CACHE_ENABLED", tt.value)
		if got := getEnvBool("CACHE_ENABLED", tt.def); got != tt.want {
			t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
		}
	}
}

// validConfig returns a development config that passes Validate.
func validConfig() Config {
	return Config{
		Port:         8080,
		Env:          EnvDevelopment,
		DatabasePath: "./data/test.db",
		CacheEnabled: true,
		MaxRangeDays: 90,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid development config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid production config",
			modify: func(c *Config) {
				c.Env = EnvProduction
				c.DatabasePath = "/data/lunar.db"
				c.APIKey = "required-in-prod"
				c.LogFormat = "json"
			},
			wantErr: false,
		},
		{
			name: "production requires API key",
			modify: func(c *Config) {
				c.Env = EnvProduction
				c.APIKey = "" // Missing!
			},
			wantErr: true,
		},
		{
			name:    "invalid port - too low",
			modify:  func(c *Config) { c.Port = 0 },
			wantErr: true,
		},
		{
			name:    "invalid port - too high",
			modify:  func(c *Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "invalid environment",
			modify:  func(c *Config) { c.Env = "invalid" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "empty database path",
			modify:  func(c *Config) { c.DatabasePath = "" },
			wantErr: true,
		},
		{
			name:    "range cap too small",
			modify:  func(c *Config) { c.MaxRangeDays = 0 },
			wantErr: true,
		},
		{
			name:    "range cap too large",
			modify:  func(c *Config) { c.MaxRangeDays = 367 },
			wantErr: true,
		},
		{
			name:    "range cap of a leap year",
			modify:  func(c *Config) { c.MaxRangeDays = 366 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT", "CACHE_ENABLED", "MAX_RANGE_DAYS",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
