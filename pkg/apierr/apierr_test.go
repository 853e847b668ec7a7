package apierr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		err     *Error
		status  int
		message string
	}{
		{TokenRequired(), http.StatusUnauthorized, "Access token required"},
		{InvalidCredentials(), http.StatusUnauthorized, "Invalid credentials"},
		{InvalidToken(nil), http.StatusForbidden, "Invalid or expired token"},
		{Forbidden(), http.StatusForbidden, "Access denied"},
		{NotFound("Dog"), http.StatusNotFound, "Dog not found"},
		{Validation("User already exists"), http.StatusBadRequest, "User already exists"},
		{Internal(errors.New("boom")), http.StatusInternalServerError, "Something went wrong"},
		{Unavailable(errors.New("db down")), http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status())
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("fetch dog: %w", Internal(cause))

	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, Internal(nil))
	assert.NotErrorIs(t, wrapped, Forbidden())

	var apiErr *Error
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, KindInternal, apiErr.Kind)

	assert.ErrorIs(t, NotFound("Pet"), NotFound("Behavior"))
}

func TestFrom(t *testing.T) {
	assert.Equal(t, KindForbidden, From(fmt.Errorf("wrapped: %w", Forbidden())).Kind)

	plain := errors.New("unexpected")
	converted := From(plain)
	assert.Equal(t, KindInternal, converted.Kind)
	assert.Same(t, plain, converted.Err)
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", NotFound("Criterion"), http.StatusNotFound, "Criterion not found"},
		{"forbidden", Forbidden(), http.StatusForbidden, "Access denied"},
		{"wrapped validation", fmt.Errorf("signup: %w", Validation("Password must be at least 6 characters")), http.StatusBadRequest, "Password must be at least 6 characters"},
		{"untyped error", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Write(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": tt.body}, body)
		})
	}
}

func TestWrite_InternalDetailStaysInLog(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	rec := httptest.NewRecorder()
	Write(rec, Internal(errors.New("password=hunter2 leaked in driver error")))

	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, logs.String(), "hunter2")
}
