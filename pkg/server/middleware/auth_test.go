package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/identity"
	"github.com/annie-elequin/pawgress/pkg/token"
)

const testSecret = "middleware-test-secret"

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func mustNotRun(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"BEARER   abc  ", "abc", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{`Token token="abc"`, "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, got)
		})
	}
}

func TestMiddleware_MissingAuthorization(t *testing.T) {
	auth := NewBearerAuthenticator(token.New(testSecret), nil)
	handler := auth.Middleware(mustNotRun(t))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"scheme only", "Bearer"},
		{"blank token", "Bearer    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/dogs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Access token required", errorBody(t, rec))
		})
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	auth := NewBearerAuthenticator(token.New(testSecret), nil)
	handler := auth.Middleware(mustNotRun(t))

	foreign, err := token.New("some-other-secret").Issue("user-1", "a@x.com")
	require.NoError(t, err)

	issued := time.Now().Add(-25 * time.Hour)
	expired, err := token.New(testSecret, token.WithClock(func() time.Time { return issued })).Issue("user-1", "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"foreign secret", foreign},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/dogs", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "Invalid or expired token", errorBody(t, rec))
		})
	}
}

func TestMiddleware_ValidTokenAttachesIdentity(t *testing.T) {
	svc := token.New(testSecret)
	auth := NewBearerAuthenticator(svc, nil)

	raw, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	called := false
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := identity.Get(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user-1", id.UserID)
		assert.Equal(t, "a@x.com", id.Email)
		assert.Equal(t, "192.0.2.10", id.RemoteIP.String())
		assert.WithinDuration(t, id.IssuedAt.Add(token.TTL), id.ExpiresAt, time.Second)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/api/dogs", nil)
	req.RemoteAddr = "192.0.2.10:43210"
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMiddleware_AuditsRejections(t *testing.T) {
	var buf bytes.Buffer
	auth := NewBearerAuthenticator(token.New(testSecret), audit.NewLogger(&buf))
	handler := auth.Middleware(mustNotRun(t))

	req := httptest.NewRequest("DELETE", "/api/behaviors/b1", nil)
	req.Header.Set("Authorization", "Bearer forged")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "rejected DELETE /api/behaviors/b1: invalid token")
	assert.NotContains(t, buf.String(), "forged")
}
