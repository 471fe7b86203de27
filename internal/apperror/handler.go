package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
)

// WriteError renders err as the standard JSON error body. Non-app errors are
// logged and reported as internal errors without leaking their text.
func WriteError(w http.ResponseWriter, log *slog.Logger, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		err = appErr
	} else if log != nil {
		log.Error("unhandled error", logger.Error(err))
	}

	status, body := ToHTTPError(err)
	WriteJSON(w, status, body)
}

// WriteJSON writes v with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
