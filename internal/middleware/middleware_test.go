package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/platform/logger"
	"patitas-eternas/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(_ context.Context, _ string) (auth.Claims, error) {
	return s.claims, s.err
}

func callerEcho(got *authz.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = CallerFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthContext_DevHeaders(t *testing.T) {
	var got authz.Caller
	h := AuthContext(nil)(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "u-1")
	req.Header.Set(DebugRoleHeader, "admin")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, authz.Caller{ID: "u-1", Role: authz.RoleAdmin}, got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, got.Authenticated())
}

func TestAuthContext_VerifierIgnoresDebugHeaders(t *testing.T) {
	var got authz.Caller
	h := AuthContext(stubVerifier{claims: auth.Claims{UserID: "u-9", Role: "user"}})(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "intruder")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, got.Authenticated())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "u-9", got.ID)
	assert.Equal(t, authz.RoleUser, got.Role)
}

func TestAuthContext_InvalidTokenStaysAnonymous(t *testing.T) {
	var got authz.Caller
	h := AuthContext(stubVerifier{err: errors.New("expired")})(callerEcho(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, got.Authenticated())
}

func TestRecover_LogsAndAnswers500(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: logger.Debug, Output: &buf})

	h := RequestLogger(l)(Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error interno del servidor")
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "request completed")
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := AuthContext(nil)(rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/adoption-applications", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		if user != "" {
			req.Header.Set(DebugUserHeader, user)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusCreated, send(""))
	require.Equal(t, http.StatusCreated, send(""))
	assert.Equal(t, http.StatusTooManyRequests, send(""))

	// otro cliente tiene su propio bucket
	assert.Equal(t, http.StatusCreated, send("u-1"))
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		rl.Handler(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
