// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cineapi/internal/recommend"
)

// StatsSource is implemented by recommend.Engine.
type StatsSource interface {
	Stats() recommend.Stats
	SweepResolverCache() int
}

// StatsLogService sweeps expired title resolutions and logs engine activity
// on a fixed interval. The first entry covers everything since the engine
// was built; later entries cover one interval. Nothing is logged for an
// interval in which no request reached the engine and nothing expired.
type StatsLogService struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewStatsLogService creates a stats logger. A non-positive interval means 15m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsLogService(source StatsSource, interval time.Duration, logger zerolog.Logger) *StatsLogService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &StatsLogService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "engine-stats").Logger(),
		name:     "engine-stats",
	}
}

// Serve implements suture.Service.
func (s *StatsLogService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last recommend.Stats
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			evicted := s.source.SweepResolverCache()
			cur := s.source.Stats()
			if requests(cur) == requests(last) && evicted == 0 {
				continue
			}
			s.log(cur, last, evicted)
			last = cur
		}
	}
}

func (s *StatsLogService) log(cur, last recommend.Stats, evicted int) {
	var hitRate float64
	if lookups := cur.ResolverCacheHits + cur.ResolverCacheMisses; lookups > 0 {
		hitRate = float64(cur.ResolverCacheHits) / float64(lookups)
	}

	s.logger.Info().
		Int64("recommendations", cur.Recommendations-last.Recommendations).
		Int64("details", cur.Details-last.Details).
		Int64("not_found", cur.NotFound-last.NotFound).
		Int("resolver_cache_size", cur.ResolverCacheSize).
		Int("expired_evicted", evicted).
		Float64("resolver_cache_hit_rate", hitRate).
		Dur("interval", s.interval).
		Msg("Engine activity")
}

func requests(st recommend.Stats) int64 {
	return st.Recommendations + st.Details + st.NotFound
}

func (s *StatsLogService) String() string {
	return s.name
}
