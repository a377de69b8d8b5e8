package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zapponejosh/lunar-calendar-api/internal/almanac"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeInvalidDate      = "INVALID_DATE"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeCacheDisabled    = "CACHE_DISABLED"
	CodeHealthCheck      = "HEALTH_CHECK_FAILED"
)

// calendarErrors maps calendar and almanac errors to responses, first
// match wins. Anything unmatched is an internal error.
var calendarErrors = []struct {
	target error
	status int
	code   string
}{
	{chinese.ErrInvalidDate, http.StatusUnprocessableEntity, CodeInvalidDate},
	{chinese.ErrOutOfRange, http.StatusBadRequest, CodeOutOfRange},
	{almanac.ErrInvalidRange, http.StatusBadRequest, CodeBadRequest},
	{almanac.ErrCacheDisabled, http.StatusConflict, CodeCacheDisabled},
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message, code string) error {
	return WriteJSON(w, status, Response{
		Error: &ErrorInfo{Message: message, Code: code},
	})
}

// WriteCalendarError writes the response for an error from the calendar
// or the almanac. Unexpected errors are logged and hidden behind a 500.
func WriteCalendarError(w http.ResponseWriter, r *http.Request, err error) error {
	for _, e := range calendarErrors {
		if errors.Is(err, e.target) {
			return WriteError(w, e.status, err.Error(), e.code)
		}
	}
	logger.Error(r.Context(), "calendar request failed", err, slog.String("path", r.URL.Path))
	return WriteInternalError(w, "Calendar calculation failed")
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}
