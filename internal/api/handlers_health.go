// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cineapi/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.HealthStatus{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when a catalog is loaded and aligned with the
// similarity matrix.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUnavailable, "Recommendation engine not loaded", nil)
		return
	}

	stats := h.engine.Stats()
	if stats.CatalogSize == 0 || stats.CatalogSize != stats.MatrixDimension {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUnavailable, "Catalog not ready", map[string]interface{}{
			"catalog_size":     stats.CatalogSize,
			"matrix_dimension": stats.MatrixDimension,
		})
		return
	}

	var hitRate float64
	if lookups := stats.ResolverCacheHits + stats.ResolverCacheMisses; lookups > 0 {
		hitRate = float64(stats.ResolverCacheHits) / float64(lookups)
	}

	respondSuccess(w, r, models.HealthStatus{
		Status:          "ready",
		Version:         h.version,
		Uptime:          time.Since(h.startTime).Seconds(),
		CatalogSize:     stats.CatalogSize,
		MatrixDimension: stats.MatrixDimension,
		Recommendations: stats.Recommendations,
		ResolverHitRate: hitRate,
	}, time.Now())
}
