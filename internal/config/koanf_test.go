// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearMappedEnv unsets every environment variable the loader reads and
// restores them when the test finishes.
func clearMappedEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// chdirTemp moves the test into an empty directory so no stray config.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return tmpDir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	// Artifact defaults
	if cfg.Data.DatasetPath != "data/df_v4.csv" {
		t.Errorf("Data.DatasetPath = %q, want data/df_v4.csv", cfg.Data.DatasetPath)
	}
	if cfg.Data.SimilarityPath != "model/content_based_model_v2.npy.gz" {
		t.Errorf("Data.SimilarityPath = %q, want model/content_based_model_v2.npy.gz", cfg.Data.SimilarityPath)
	}

	// Database defaults
	if cfg.Database.MaxMemory != "1GB" {
		t.Errorf("Database.MaxMemory = %q, want 1GB", cfg.Database.MaxMemory)
	}
	if !cfg.Database.PreserveInsertionOrder {
		t.Errorf("Database.PreserveInsertionOrder should be true by default")
	}

	// Recommendation defaults
	if cfg.Recommend.MatchThreshold != 60 {
		t.Errorf("Recommend.MatchThreshold = %d, want 60", cfg.Recommend.MatchThreshold)
	}
	if cfg.Recommend.DefaultLimit != 5 {
		t.Errorf("Recommend.DefaultLimit = %d, want 5", cfg.Recommend.DefaultLimit)
	}
	if cfg.Recommend.MaxLimit != 10 {
		t.Errorf("Recommend.MaxLimit = %d, want 10", cfg.Recommend.MaxLimit)
	}
	if cfg.Recommend.ResolverCacheTTL != 10*time.Minute {
		t.Errorf("Recommend.ResolverCacheTTL = %v, want 10m", cfg.Recommend.ResolverCacheTTL)
	}

	// Server defaults
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}

	// API defaults
	if cfg.API.PopularDefaultLimit != 10 {
		t.Errorf("API.PopularDefaultLimit = %d, want 10", cfg.API.PopularDefaultLimit)
	}
	if cfg.API.ListDefaultLimit != -1 {
		t.Errorf("API.ListDefaultLimit = %d, want -1", cfg.API.ListDefaultLimit)
	}

	// Security defaults
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("Security.RateLimitReqs = %d, want 100", cfg.Security.RateLimitReqs)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("Security.CORSOrigins = %v, want [http://localhost:3000]", cfg.Security.CORSOrigins)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformation
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DATASET_PATH", "data.dataset_path"},
		{"SIMILARITY_PATH", "data.similarity_path"},
		{"DUCKDB_THREADS", "database.threads"},
		{"RECOMMEND_MATCH_THRESHOLD", "recommend.match_threshold"},
		{"RECOMMEND_RESOLVER_CACHE_TTL", "recommend.resolver_cache_ttl"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"API_POPULAR_DEFAULT_LIMIT", "api.popular_default_limit"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	clearMappedEnv(t)
	tmpDir := chdirTemp(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("test: true"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("test: true"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearMappedEnv(t)
	chdirTemp(t)

	t.Setenv("DATASET_PATH", "/srv/movies.parquet")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_MATCH_THRESHOLD", "75")
	t.Setenv("RECOMMEND_RESOLVER_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Data.DatasetPath != "/srv/movies.parquet" {
		t.Errorf("Data.DatasetPath = %q, want /srv/movies.parquet", cfg.Data.DatasetPath)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.MatchThreshold != 75 {
		t.Errorf("Recommend.MatchThreshold = %d, want 75", cfg.Recommend.MatchThreshold)
	}
	if cfg.Recommend.ResolverCacheTTL != 30*time.Second {
		t.Errorf("Recommend.ResolverCacheTTL = %v, want 30s", cfg.Recommend.ResolverCacheTTL)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Data.SimilarityPath != "model/content_based_model_v2.npy.gz" {
		t.Errorf("Data.SimilarityPath = %q, want default", cfg.Data.SimilarityPath)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearMappedEnv(t)
	tmpDir := chdirTemp(t)

	configContent := `
data:
  dataset_path: /data/df_v4.parquet
  similarity_path: /data/model.npy
recommend:
  match_threshold: 70
  max_limit: 20
server:
  port: 8080
  environment: production
security:
  cors_origins:
    - https://movies.example.com
logging:
  level: warn
  format: console
`
	configPath := filepath.Join(tmpDir, "cineapi.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Data.DatasetPath != "/data/df_v4.parquet" {
		t.Errorf("Data.DatasetPath = %q, want /data/df_v4.parquet", cfg.Data.DatasetPath)
	}
	if cfg.Recommend.MatchThreshold != 70 {
		t.Errorf("Recommend.MatchThreshold = %d, want 70", cfg.Recommend.MatchThreshold)
	}
	if cfg.Recommend.MaxLimit != 20 {
		t.Errorf("Recommend.MaxLimit = %d, want 20", cfg.Recommend.MaxLimit)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("IsProduction() = false, want true")
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://movies.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

// TestLoadWithKoanfEnvOverridesFile verifies ENV > File precedence
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	clearMappedEnv(t)
	tmpDir := chdirTemp(t)

	configContent := `
server:
  port: 8080
recommend:
  default_limit: 3
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env overrides file)", cfg.Server.Port)
	}
	if cfg.Recommend.DefaultLimit != 3 {
		t.Errorf("Recommend.DefaultLimit = %d, want 3 (from file)", cfg.Recommend.DefaultLimit)
	}
}

// TestLoadWithKoanfValidation verifies that invalid values are rejected at load time
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"threshold above 100", map[string]string{"RECOMMEND_MATCH_THRESHOLD": "101"}, "RECOMMEND_MATCH_THRESHOLD"},
		{"max below default", map[string]string{"RECOMMEND_DEFAULT_LIMIT": "8", "RECOMMEND_MAX_LIMIT": "4"}, "RECOMMEND_MAX_LIMIT"},
		{"empty dataset path", map[string]string{"DATASET_PATH": " "}, "DATASET_PATH"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"rate limit window too long", map[string]string{"RATE_LIMIT_WINDOW": "2h"}, "RATE_LIMIT_WINDOW"},
		{"list limit below -1", map[string]string{"API_LIST_DEFAULT_LIMIT": "-5"}, "API_LIST_DEFAULT_LIMIT"},
		{"insertion order disabled", map[string]string{"DUCKDB_PRESERVE_INSERTION_ORDER": "false"}, "DUCKDB_PRESERVE_INSERTION_ORDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearMappedEnv(t)
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("LoadWithKoanf() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithKoanf() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

// TestRateLimitDisabledSkipsBounds verifies that bounds are not enforced when rate limiting is off
func TestRateLimitDisabledSkipsBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

// TestShouldWarnAboutCORS verifies wildcard detection in production
func TestShouldWarnAboutCORS(t *testing.T) {
	tests := []struct {
		env     string
		origins []string
		want    bool
	}{
		{"production", []string{"*"}, true},
		{"prod", []string{"https://x.example.com", "*"}, true},
		{"development", []string{"*"}, false},
		{"production", []string{"https://x.example.com"}, false},
	}

	for _, tt := range tests {
		cfg := defaultConfig()
		cfg.Server.Environment = tt.env
		cfg.Security.CORSOrigins = tt.origins
		if got := cfg.ShouldWarnAboutCORS(); got != tt.want {
			t.Errorf("ShouldWarnAboutCORS(%s, %v) = %v, want %v", tt.env, tt.origins, got, tt.want)
		}
	}
}
