// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package services provides suture.Service wrappers for CineAPI components.

Each wrapper implements suture's context-aware Serve method and fmt.Stringer
so supervisor events name the service:

  - HTTPServerService: runs *http.Server and drains it on shutdown
  - UptimeService: keeps the uptime gauge current
  - StatsLogService: sweeps expired resolver cache entries and logs engine counters on an interval

Serve returns ctx.Err() on a clean stop. Any other error asks the supervisor
for a restart.
*/
package services
