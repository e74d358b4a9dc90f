// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver

	"github.com/tomtom215/cineapi/internal/config"
)

// DB wraps an in-memory DuckDB instance used to read the movie dataset.
// It holds no state after loading; callers close it once the catalog is built.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens an in-memory DuckDB database tuned by cfg.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config is required")
	}

	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	// Row order of the dataset is the similarity matrix order, so
	// preserve_insertion_order is forced on regardless of cfg.
	// Auto-install/auto-load stay off: CSV and Parquet readers are built in.
	connStr := fmt.Sprintf(":memory:?threads=%d&max_memory=%s&preserve_insertion_order=true&autoinstall_known_extensions=false&autoload_known_extensions=false",
		numThreads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps the staging table visible to every statement.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: conn, cfg: cfg}, nil
}

// Ping verifies the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close releases the DuckDB instance.
func (db *DB) Close() error {
	return db.conn.Close()
}
