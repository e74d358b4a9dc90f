// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package cache provides a thread-safe, generic LRU cache with TTL support.

The only consumer today is the fuzzy title resolver, which memoizes the
outcome of scoring a query against every catalog title. A fuzzy resolution
is O(N * L^2) in the catalog size and title length, while a cache hit is O(1),
so repeated lookups for popular titles skip the full scan.

# Overview

The cache provides:
  - O(1) Get and Add
  - O(1) least-recently-used eviction once capacity is reached
  - Lazy TTL expiration on Get, plus CleanupExpired for periodic sweeps
  - Hit and miss counters for metrics export

# Usage Example

	c := cache.NewLRUCache[fuzzy.Match](4096, 10*time.Minute)
	c.Add("the dark knight", match)
	if m, ok := c.Get("the dark knight"); ok {
	    // use m
	}

# Thread Safety

All methods are safe for concurrent use. Get mutates the recency list and
therefore takes the write lock, as does CleanupExpired; Stats takes the read
lock.
*/
package cache
