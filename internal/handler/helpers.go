package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
	"github.com/parisxmas/foreverfamily/internal/metrics"
)

// maxBodyBytes caps request bodies at 100 KiB.
const maxBodyBytes = 100 << 10

// readJSON decodes the request body into v. An empty body leaves v
// untouched. Numbers decode as json.Number when v holds interface values.
func readJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return apperrors.Validation("invalid request body")
	}
	if len(body) > maxBodyBytes {
		return apperrors.Validation("request body too large")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return apperrors.Validation("invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response failed", "error", err)
	}
}

// writeError renders err as {"error": message} with the status of its type.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.As(err)
	metrics.HTTPErrorsTotal.WithLabelValues(string(appErr.Type)).Inc()

	if appErr.Type == apperrors.TypeInternal {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", errors.Unwrap(appErr))
	}
	writeJSON(w, appErr.HTTPStatus(), map[string]string{"error": appErr.Message})
}

type successResponse struct {
	Success bool `json:"success"`
}
