// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/cineapi/internal/fuzzy"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// MatchThreshold is the minimum fuzzy score (0-100, inclusive) a title
	// must reach to be accepted.
	// Default: 60.
	MatchThreshold int

	// DefaultLimit is the limit used when the caller passes none.
	// Default: 5.
	DefaultLimit int

	// MaxLimit is the largest accepted recommendation limit.
	// Default: 10.
	MaxLimit int

	// ResolverCacheSize is the number of fuzzy resolutions kept in memory.
	// Zero disables the cache.
	// Default: 4096.
	ResolverCacheSize int

	// ResolverCacheTTL bounds how long a resolution stays cached.
	// Default: 10m.
	ResolverCacheTTL time.Duration
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		MatchThreshold:    fuzzy.DefaultThreshold,
		DefaultLimit:      5,
		MaxLimit:          10,
		ResolverCacheSize: 4096,
		ResolverCacheTTL:  10 * time.Minute,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > fuzzy.MaxScore {
		return fmt.Errorf("match_threshold must be in [0, %d], got %d", fuzzy.MaxScore, c.MatchThreshold)
	}
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit, got %d < %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.ResolverCacheSize < 0 {
		return fmt.Errorf("resolver_cache_size must be non-negative, got %d", c.ResolverCacheSize)
	}
	return nil
}

func (c *Config) resolverConfig() fuzzy.Config {
	return fuzzy.Config{
		Threshold: c.MatchThreshold,
		CacheSize: c.ResolverCacheSize,
		CacheTTL:  c.ResolverCacheTTL,
	}
}
