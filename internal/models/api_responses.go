// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// API error codes.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeDataIntegrity = "DATA_INTEGRITY_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeRateLimited   = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnavailable   = "SERVICE_UNAVAILABLE"
	ErrCodeMethod        = "METHOD_NOT_ALLOWED"
)

// APIResponse is the envelope every /api/v1 endpoint returns.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": "avatr", "matched_title": "avatar", "recommendations": [...]},
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z", "query_time_ms": 2}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "no movie matches \"zzzz\""},
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// DetailError is the error body of the unversioned routes: a single
// human-readable detail string, e.g. {"detail": "No movie matches \"zzzz\""}.
type DetailError struct {
	Detail string `json:"detail"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the structured error body.
//
// Codes:
//   - VALIDATION_ERROR: bad limit, sortby or title parameter
//   - NOT_FOUND: no title scored at or above the match threshold
//   - DATA_INTEGRITY_ERROR: catalog and similarity matrix disagree
//   - RATE_LIMIT_EXCEEDED: too many requests from this client
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
