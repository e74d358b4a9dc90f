// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

// Package main provides the CineAPI HTTP server
//
// @title CineAPI
// @version 1.0
// @description Movie metadata and content-based recommendations.
// @description
// @description ## Title matching
// @description
// @description Titles in the path are matched case-insensitively with typo tolerance.
// @description A query is accepted when its best fuzzy score is at least 60 out of 100.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on /api/v1.
// @description Health probes are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "No movie matches \"xyzzy\""
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cineapi
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
//
// @tag.name Core
// @tag.description Welcome message and health probes
//
// @tag.name Movies
// @tag.description Catalog listing, title lookup and popularity rankings
//
// @tag.name Recommendations
// @tag.description Content-based similar movie recommendations
package main
