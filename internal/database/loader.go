// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/cineapi/internal/catalog"
	"github.com/tomtom215/cineapi/internal/config"
	"github.com/tomtom215/cineapi/internal/logging"
)

const (
	stagingTable = "movies_raw"

	// rowOrdinal numbers staged rows in file order; the final SELECT sorts on it.
	rowOrdinal = "__cineapi_row"
)

// columnSpec describes how one Movie field is read from the dataset.
// The first alias present in the file wins (case-insensitive).
type columnSpec struct {
	aliases  []string
	required bool
	expr     func(col string) string // SQL expression over a quoted column
	fallback *columnSpec             // tried when no alias is present
	missing  string                  // SQL expression when neither matches
}

func varcharExpr(col string) string { return fmt.Sprintf("CAST(%s AS VARCHAR)", col) }
func bigintExpr(col string) string  { return fmt.Sprintf("TRY_CAST(%s AS BIGINT)", col) }
func intExpr(col string) string     { return fmt.Sprintf("TRY_CAST(%s AS INTEGER)", col) }
func doubleExpr(col string) string  { return fmt.Sprintf("TRY_CAST(%s AS DOUBLE)", col) }
func dateYearExpr(col string) string {
	return fmt.Sprintf("CAST(year(TRY_CAST(%s AS DATE)) AS INTEGER)", col)
}

// movieColumns is ordered to match the Scan call in LoadMovies.
var movieColumns = []columnSpec{
	{aliases: []string{"id", "movie_id"}, required: true, expr: bigintExpr},
	{aliases: []string{"original_title", "title"}, required: true, expr: varcharExpr},
	{aliases: []string{"cast"}, expr: varcharExpr, missing: "NULL::VARCHAR"},
	{aliases: []string{"director"}, expr: varcharExpr, missing: "NULL::VARCHAR"},
	{aliases: []string{"keywords"}, expr: varcharExpr, missing: "NULL::VARCHAR"},
	{aliases: []string{"genres"}, expr: varcharExpr, missing: "NULL::VARCHAR"},
	{aliases: []string{"runtime"}, expr: intExpr, missing: "NULL::INTEGER"},
	{aliases: []string{"vote_average", "score"}, expr: doubleExpr, missing: "NULL::DOUBLE"},
	{
		aliases:  []string{"release_year"},
		expr:     intExpr,
		fallback: &columnSpec{aliases: []string{"release_date"}, expr: dateYearExpr},
		missing:  "NULL::INTEGER",
	},
}

// LoadMovies opens a temporary DuckDB instance, reads the dataset at path
// and returns its rows in file order.
func LoadMovies(ctx context.Context, cfg *config.DatabaseConfig, path string) ([]catalog.Movie, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(db)

	return db.LoadMovies(ctx, path)
}

// LoadMovies reads the dataset at path. CSV (optionally gzipped or
// tab-separated) and Parquet files are supported, chosen by extension.
// Row order is preserved.
func (db *DB) LoadMovies(ctx context.Context, path string) ([]catalog.Movie, error) {
	start := time.Now()
	logger := logging.WithComponent("database")

	source, err := sourceExpr(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer closeQuietly(conn)

	if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+stagingTable); err != nil {
		return nil, fmt.Errorf("failed to reset staging table: %w", err)
	}
	staging := fmt.Sprintf("CREATE TABLE %s AS SELECT ROW_NUMBER() OVER () AS %s, * FROM %s",
		stagingTable, quoteIdent(rowOrdinal), source)
	if _, err := conn.ExecContext(ctx, staging); err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), "DROP TABLE IF EXISTS "+stagingTable)
	}()

	columns, err := stagingColumns(ctx, conn)
	if err != nil {
		return nil, err
	}

	query, err := buildSelect(columns)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer closeQuietly(rows)

	var movies []catalog.Movie
	rowNum := 0
	for rows.Next() {
		rowNum++
		var (
			id                               sql.NullInt64
			title                            sql.NullString
			cast, director, keywords, genres sql.NullString
			runtime, releaseYear             sql.NullInt64
			voteAverage                      sql.NullFloat64
		)
		if err := rows.Scan(&id, &title, &cast, &director, &keywords, &genres, &runtime, &voteAverage, &releaseYear); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row %d: %w", rowNum, err)
		}
		if !id.Valid {
			return nil, fmt.Errorf("%w: row %d has no numeric id", ErrInvalidRow, rowNum)
		}

		movies = append(movies, catalog.Movie{
			ID:          id.Int64,
			Title:       title.String,
			Cast:        cast.String,
			Director:    director.String,
			Keywords:    keywords.String,
			Genres:      genres.String,
			Runtime:     intPtr(runtime),
			VoteAverage: floatPtr(voteAverage),
			ReleaseYear: intPtr(releaseYear),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dataset rows: %w", err)
	}

	logger.Info().
		Str("path", path).
		Int("rows", len(movies)).
		Int("columns", len(columns)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	return movies, nil
}

// sourceExpr returns the DuckDB table function reading path.
func sourceExpr(path string) (string, error) {
	lower := strings.ToLower(path)
	literal := quoteLiteral(path)

	switch {
	case strings.HasSuffix(lower, ".parquet"):
		return fmt.Sprintf("read_parquet(%s)", literal), nil
	case strings.HasSuffix(lower, ".tsv"), strings.HasSuffix(lower, ".tsv.gz"):
		return fmt.Sprintf("read_csv_auto(%s, header=true, delim='\\t')", literal), nil
	case strings.HasSuffix(lower, ".csv"), strings.HasSuffix(lower, ".csv.gz"):
		return fmt.Sprintf("read_csv_auto(%s, header=true)", literal), nil
	default:
		return "", fmt.Errorf("%w: %s (expected .csv, .csv.gz, .tsv or .parquet)", ErrUnsupportedFormat, path)
	}
}

// stagingColumns lists the dataset's columns keyed by lowercase name. The
// row ordinal is not a dataset column and is left out.
func stagingColumns(ctx context.Context, conn *sql.Conn) (map[string]string, error) {
	rows, err := conn.QueryContext(ctx,
		"SELECT column_name FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position",
		stagingTable)
	if err != nil {
		return nil, fmt.Errorf("failed to describe dataset: %w", err)
	}
	defer closeQuietly(rows)

	columns := make(map[string]string)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		if name == rowOrdinal {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[key]; !dup {
			columns[key] = name
		}
	}
	return columns, rows.Err()
}

// buildSelect maps the dataset's columns onto movieColumns, in file order.
func buildSelect(columns map[string]string) (string, error) {
	exprs := make([]string, 0, len(movieColumns))
	for _, spec := range movieColumns {
		if col, ok := lookup(columns, spec.aliases); ok {
			exprs = append(exprs, spec.expr(quoteIdent(col)))
			continue
		}
		if spec.fallback != nil {
			if col, ok := lookup(columns, spec.fallback.aliases); ok {
				exprs = append(exprs, spec.fallback.expr(quoteIdent(col)))
				continue
			}
		}
		switch {
		case spec.required:
			return "", fmt.Errorf("%w: one of %s", ErrMissingColumn, strings.Join(spec.aliases, ", "))
		default:
			exprs = append(exprs, spec.missing)
		}
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(exprs, ", "), stagingTable, quoteIdent(rowOrdinal)), nil
}

func lookup(columns map[string]string, aliases []string) (string, bool) {
	for _, a := range aliases {
		if col, ok := columns[a]; ok {
			return col, true
		}
	}
	return "", false
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
