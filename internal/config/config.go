// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Artifacts:
//     - Data: Dataset and similarity matrix locations
//     - Database: DuckDB settings used while reading the dataset
//
//  2. Recommendation:
//     - Recommend: Fuzzy match threshold, limits, resolution cache
//
//  3. HTTP:
//     - Server: Listener address and timeouts
//     - API: Endpoint defaults
//     - Security: CORS and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	movies, err := database.LoadMovies(ctx, &cfg.Database, cfg.Data.DatasetPath)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the two startup artifacts. Row i of the dataset must be
// row and column i of the similarity matrix; the files are always deployed
// as a pair.
//
// Environment Variables:
//   - DATASET_PATH: CSV or Parquet movie dataset (default: data/df_v4.csv)
//   - SIMILARITY_PATH: .npy similarity matrix, optionally gzipped (default: model/content_based_model_v2.npy.gz)
type DataConfig struct {
	DatasetPath    string `koanf:"dataset_path"`
	SimilarityPath string `koanf:"similarity_path"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // Must stay true: row order is the matrix order
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_MATCH_THRESHOLD: Minimum fuzzy title score, 0-100 (default: 60)
//   - RECOMMEND_DEFAULT_LIMIT: Limit when the request has none (default: 5)
//   - RECOMMEND_MAX_LIMIT: Largest accepted limit (default: 10)
//   - RECOMMEND_RESOLVER_CACHE_SIZE: Cached title resolutions, 0 disables (default: 4096)
//   - RECOMMEND_RESOLVER_CACHE_TTL: Resolution cache TTL (default: 10m)
type RecommendConfig struct {
	MatchThreshold    int           `koanf:"match_threshold"`
	DefaultLimit      int           `koanf:"default_limit"`
	MaxLimit          int           `koanf:"max_limit"`
	ResolverCacheSize int           `koanf:"resolver_cache_size"`
	ResolverCacheTTL  time.Duration `koanf:"resolver_cache_ttl"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// APIConfig holds endpoint defaults
type APIConfig struct {
	PopularDefaultLimit int `koanf:"popular_default_limit"`
	ListDefaultLimit    int `koanf:"list_default_limit"` // -1 lists every movie
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
