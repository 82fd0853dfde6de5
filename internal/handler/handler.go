package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/anonboard/anonboard/internal/config"
	"github.com/anonboard/anonboard/internal/logger"
	"github.com/anonboard/anonboard/internal/service"
)

// HealthChecker is what Ready needs from the store.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread service.ThreadService
	reply  service.ReplyService
	health HealthChecker
	cfg    *config.Config
}

func New(thread service.ThreadService, reply service.ReplyService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{thread, reply, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encode response", "err", err)
	}
}

func writeSuccess(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
