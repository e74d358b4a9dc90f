// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package models

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status  string `json:"status" example:"healthy"`
	Version string `json:"version" example:"1.0.0"`

	// Uptime is the process uptime in seconds.
	Uptime float64 `json:"uptime" example:"3600.5"`

	// Readiness fields, omitted from the liveness probe.
	CatalogSize     int     `json:"catalog_size,omitempty" example:"4803"`
	MatrixDimension int     `json:"matrix_dimension,omitempty" example:"4803"`
	Recommendations int64   `json:"recommendations_served,omitempty" example:"120"`
	ResolverHitRate float64 `json:"resolver_cache_hit_rate,omitempty" example:"0.82"`
}
