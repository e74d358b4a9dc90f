// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cineapi/internal/logging"
	"github.com/tomtom215/cineapi/internal/models"
	"github.com/tomtom215/cineapi/internal/recommend"
	"github.com/tomtom215/cineapi/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers. Successful responses
// carry an ETag over the whole body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := ""
	if status == http.StatusOK {
		etag = generateETag(data)
	}
	writeJSON(w, r, status, data, etag)
}

// writeJSON writes an encoded body. A non-empty etag is sent as a strong
// validator and answered with 304 when the client already has it; the
// catalog never changes while the process runs.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data []byte, etag string) {
	w.Header().Set("Content-Type", "application/json")
	if etag != "" {
		etag = `"` + etag + `"`
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=60")
		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to write JSON response")
	}
}

// etagMatches reports whether an If-None-Match header lists etag.
// Weak comparison applies, as RFC 9110 requires for If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondSuccess wraps data in the success envelope. start is when the
// handler began work and feeds query_time_ms. The ETag covers the payload
// only, so the per-request metadata does not defeat revalidation.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	payload, err := json.Marshal(data)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to marshal response payload")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if wantsBarePayload(r) {
		writeJSON(w, r, http.StatusOK, payload, generateETag(payload))
		return
	}

	body, err := json.Marshal(&models.APIResponse{
		Status: models.StatusSuccess,
		Data:   json.RawMessage(payload),
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, body, generateETag(payload))
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	if wantsBarePayload(r) {
		respondJSON(w, r, status, &models.DetailError{Detail: message})
		return
	}
	respondJSON(w, r, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondEngineError maps an engine error onto the API error taxonomy.
func respondEngineError(w http.ResponseWriter, r *http.Request, query string, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound,
			fmt.Sprintf("No movie matches %q", query), nil)

	case errors.Is(err, recommend.ErrInvalidParameter):
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation,
			strings.TrimPrefix(err.Error(), recommend.ErrInvalidParameter.Error()+": "), nil)

	case errors.Is(err, recommend.ErrDataIntegrity):
		logging.CtxErr(r.Context(), err).
			Str("query", sanitizeLogValue(query)).
			Msg("Catalog and similarity matrix disagree")
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDataIntegrity,
			"Movie data is inconsistent", nil)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Request abandoned")
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUnavailable,
			"Request was cancelled", nil)

	default:
		logging.CtxErr(r.Context(), err).
			Str("query", sanitizeLogValue(query)).
			Msg("Engine error")
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal,
			"An internal error occurred", nil)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	return toAPIError(verr)
}

func toAPIError(verr *validation.RequestValidationError) *models.APIError {
	apiErr := verr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// queryInt reads an integer query parameter. A missing or empty value
// yields def; anything that is not an integer is a validation error.
func queryInt(r *http.Request, key string, def int) (int, *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, toAPIError(validation.NotANumber(key, raw))
	}
	return v, nil
}

// queryString reads a string query parameter, falling back to def when absent.
func queryString(r *http.Request, key, def string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return v
	}
	return def
}

// titleParam returns the {title} path parameter decoded. chi reads the raw
// path when the request carries escapes the decoded path cannot represent
// (such as %2F), so those values are unescaped here.
func titleParam(r *http.Request) string {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath == "" {
		return title
	}
	if decoded, err := url.PathUnescape(title); err == nil {
		return decoded
	}
	return title
}

// respondValidation sends a 400 for a failed validation.
func respondValidation(w http.ResponseWriter, r *http.Request, apiErr *models.APIError) {
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}
