package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// DataResponse is the standard success envelope: {"data": <payload>}.
type DataResponse struct {
	Data any `json:"data"`
}

// Paging describes the page of a search result.
type Paging struct {
	Page      int   `json:"page"`
	TotalItem int64 `json:"totalItem"`
	TotalPage int64 `json:"totalPage"`
}

// PagedResponse is the success envelope for paged listings.
type PagedResponse struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}

// ErrorResponse is the standard failure envelope: {"errors": <message or list>}.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithPage writes a success envelope with paging metadata attached.
func RespondWithPage(w http.ResponseWriter, r *http.Request, status int, data any, paging Paging) {
	RespondWithJSON(w, r, status, PagedResponse{Data: data, Paging: paging})
}

// RespondWithError writes a failure envelope holding a single message.
// The trace ID, when present, goes to the logs rather than the body.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logErrorResponse(r, status, message)
	RespondWithJSON(w, r, status, ErrorResponse{Errors: message})
}

// RespondWithErrors writes a failure envelope holding a message list,
// typically one message per failing field.
func RespondWithErrors(w http.ResponseWriter, r *http.Request, status int, messages []string) {
	logErrorResponse(r, status, "validation failed")
	RespondWithJSON(w, r, status, ErrorResponse{Errors: messages})
}

// logErrorResponse logs an error response at a level matching its status:
// 5xx at ERROR, everything else at DEBUG.
func logErrorResponse(r *http.Request, status int, message string) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	slog.LogAttrs(r.Context(), level, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))
}
