package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"without internal", ErrBadRequest, "bad_request: Invalid request"},
		{"with internal", ErrInternal.WithInternal(errors.New("boom")), "internal_error: An internal error occurred (boom)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_CopiesDoNotMutate(t *testing.T) {
	custom := ErrValidation.WithMessage("name is required").WithDetails(map[string]any{"field": "name"})

	assert.Equal(t, "Validation failed", ErrValidation.Message)
	assert.Nil(t, ErrValidation.Details)
	assert.Equal(t, "name is required", custom.Message)
	assert.Equal(t, http.StatusBadRequest, custom.HTTPStatus)
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := ErrInternal.WithInternal(inner)
	assert.True(t, errors.Is(err, inner))
}

func TestToHTTPError(t *testing.T) {
	status, body := ToHTTPError(NewValidation("name", "bad name"))
	assert.Equal(t, http.StatusBadRequest, status)

	inner := body["error"].(map[string]any)
	assert.Equal(t, "validation_error", inner["code"])
	assert.Equal(t, "bad name", inner["message"])
	assert.Equal(t, map[string]any{"field": "name"}, inner["details"])

	status, body = ToHTTPError(errors.New("secret db failure"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", ErrTooManyRequests, http.StatusTooManyRequests, "rate_limited"},
		{"wrapped app error", fmt.Errorf("ingest: %w", NewBadRequest("bad json")), http.StatusBadRequest, "bad_request"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, logger.Discard(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "boom")
		})
	}
}
