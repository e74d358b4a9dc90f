// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cineapi/internal/metrics"
)

// UptimeService keeps the app_uptime_seconds gauge current.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService measures uptime from start. A non-positive interval means 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (s *UptimeService) Serve(ctx context.Context) error {
	metrics.StartUptimeTracker(s.start, s.interval, ctx.Done())
	return ctx.Err()
}

func (s *UptimeService) String() string {
	return "uptime-tracker"
}
