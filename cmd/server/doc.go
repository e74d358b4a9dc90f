// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package main is the entry point for the CineAPI server.

CineAPI serves a fixed movie catalog over HTTP: listing, fuzzy title lookup,
popularity rankings and content-based recommendations read from a
precomputed similarity matrix.

# Startup

 1. Configuration: Koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Dataset: CSV or Parquet read through DuckDB into the catalog
 4. Similarity matrix: .npy file, optionally gzipped
 5. Recommendation engine: rejects a catalog and matrix of different sizes
 6. Supervisor tree: uptime gauge, engine statistics, HTTP server

Any failure before the supervisor tree starts exits the process. The
artifacts are never reloaded.

# Supervision

	RootSupervisor ("cineapi")
	├── TelemetrySupervisor ("telemetry-layer")
	│   ├── UptimeService
	│   └── StatsLogService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Signal Handling

SIGINT and SIGTERM stop the tree. The HTTP server stops accepting
connections and waits up to 10s for in-flight requests.

# Example Usage

	export DATASET_PATH=data/df_v4.csv
	export SIMILARITY_PATH=model/content_based_model_v2.npy.gz
	export LOG_FORMAT=console
	./cineapi

	curl localhost:8000/api/v1/recommendations/avatar?limit=6

# See Also

  - internal/recommend: the engine behind every endpoint
  - internal/api: HTTP handlers and router
  - internal/config: every environment variable
*/
package main
