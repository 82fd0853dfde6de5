package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders(t *testing.T) {
	t.Run("sets headers and csp", func(t *testing.T) {
		mw := SecurityHeadersWithCSP(false, "default-src 'none'")
		rr := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "default-src 'none'", rr.Header().Get("Content-Security-Policy"))
		assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
	})

	t.Run("hsts only on https", func(t *testing.T) {
		mw := SecurityHeadersWithCSP(true, "")
		rr := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rr.Header().Get("Strict-Transport-Security"))
		assert.Empty(t, rr.Header().Get("Content-Security-Policy"))
	})
}

func TestRequestId(t *testing.T) {
	t.Run("generates an id and exposes it", func(t *testing.T) {
		var seen string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestId(r.Context())
		})
		rr := httptest.NewRecorder()
		RequestId(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get("X-Request-Id"))
	})

	t.Run("keeps an id supplied by a proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "upstream-id")
		rr := httptest.NewRecorder()
		RequestId(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, "upstream-id", rr.Header().Get("X-Request-Id"))
	})
}

func TestLoggingPreservesStatus(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()
	Logging(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestMetricsPassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	rr := httptest.NewRecorder()
	Metrics(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
