// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

/*
Package supervisor provides process supervision for CineAPI using suture v4.

All long-running services live in one supervisor tree with automatic
restart, failure isolation and graceful shutdown:

	RootSupervisor ("cineapi")
	├── TelemetrySupervisor ("telemetry-layer")
	│   ├── UptimeService
	│   └── StatsLogService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog and similarity matrix are loaded before the tree starts and are
never reloaded, so no service owns them.

# Usage Example

	logger := logging.NewSlogLogger("supervisor")
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddTelemetryService(services.NewUptimeService(startTime, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Logging

Supervisor events (service start, failure, backoff, stop timeout) are written
through sutureslog into an slog.Logger that forwards to zerolog, so they share
the application's log format.

# See Also

  - internal/supervisor/services: service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
