// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package config provides centralized configuration management for CineAPI.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Every environment variable is listed in
an explicit mapping table; unrelated variables in the process environment are
ignored.

# Config File

The first existing file wins:
  - $CONFIG_PATH
  - config.yaml, config.yml
  - /etc/cineapi/config.yaml, /etc/cineapi/config.yml

Example:

	data:
	  dataset_path: /srv/cineapi/df_v4.parquet
	  similarity_path: /srv/cineapi/content_based_model_v2.npy.gz
	recommend:
	  match_threshold: 70
	security:
	  cors_origins: ["https://movies.example.com"]

# Environment Variables

Artifacts (DataConfig):
  - DATASET_PATH: movie dataset, .csv or .parquet (default: data/df_v4.csv)
  - SIMILARITY_PATH: similarity matrix, .npy or gzipped .npy (default: model/content_based_model_v2.npy.gz)

Database (DatabaseConfig):
  - DUCKDB_MAX_MEMORY: DuckDB memory cap while loading (default: 1GB)
  - DUCKDB_THREADS: DuckDB threads, 0 = NumCPU (default: 0)

Recommendation (RecommendConfig):
  - RECOMMEND_MATCH_THRESHOLD (default: 60)
  - RECOMMEND_DEFAULT_LIMIT (default: 5)
  - RECOMMEND_MAX_LIMIT (default: 10)
  - RECOMMEND_RESOLVER_CACHE_SIZE (default: 4096)
  - RECOMMEND_RESOLVER_CACHE_TTL (default: 10m)

HTTP Server (ServerConfig, APIConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)
  - API_POPULAR_DEFAULT_LIMIT (default: 10)
  - API_LIST_DEFAULT_LIMIT: -1 lists every movie (default: -1)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: http://localhost:3000)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window duration (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# Validation

Load rejects out-of-range ports, limits, thresholds and rate limits, empty
artifact paths, and preserve_insertion_order=false (which would let DuckDB
reorder dataset rows relative to the similarity matrix).
*/
package config
