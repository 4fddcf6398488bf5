// Package respond writes the JSON envelopes shared by all handlers. Errors
// always carry a stable machine-readable kind; debug-only detail is stripped
// unless the server runs in a non-production configuration.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/studiodesk/studiodesk/internal/apperr"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes the bare {"success":true} acknowledgment used by mutations
// that return no body.
func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

type errorBody struct {
	Kind    apperr.Kind `json:"kind"`
	Message string      `json:"message"`
	Fields  []string    `json:"fields,omitempty"`
	Detail  any         `json:"detail,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Error maps err to its HTTP status and JSON envelope. Unclassified errors
// are treated as storage failures.
func Error(w http.ResponseWriter, err error, debug bool) {
	body := errorBody{
		Kind:    apperr.KindStorage,
		Message: "internal error",
	}

	if appErr, ok := apperr.From(err); ok {
		body.Kind = appErr.Kind
		body.Message = appErr.Message
		body.Fields = appErr.Fields

		if debug {
			body.Detail = appErr.Detail
		}
	}

	status := statusFor(body.Kind)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "kind", body.Kind, "error", err)
	}

	JSON(w, status, errorEnvelope{Error: body})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindInvalidArgument:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
