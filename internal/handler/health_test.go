package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anonboard/anonboard/internal/config"
)

// --- Mock for HealthChecker ---

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

// --- Tests ---

func TestHealth(t *testing.T) {
	h := New(&MockThreadService{}, &MockReplyService{}, &MockHealthChecker{}, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		h := New(&MockThreadService{}, &MockReplyService{}, &MockHealthChecker{}, &config.Config{})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rr := httptest.NewRecorder()
		h.Ready(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("store down", func(t *testing.T) {
		checker := &MockHealthChecker{PingFunc: func(context.Context) error {
			return assert.AnError
		}}
		h := New(&MockThreadService{}, &MockReplyService{}, checker, &config.Config{})

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rr := httptest.NewRecorder()
		h.Ready(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
