package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/anonboard/anonboard/internal/middleware"
	"github.com/anonboard/anonboard/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	))

	// JSON API only, no scripts/styles needed
	csp := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, csp))

	r.Use(mw.RequestId)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)

	// Avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/api/threads/{board}", h.GetThreads).Methods("GET")
	r.HandleFunc("/api/threads/{board}", h.CreateThread).Methods("POST")
	r.HandleFunc("/api/threads/{board}", h.ReportThread).Methods("PUT")
	r.HandleFunc("/api/threads/{board}", h.DeleteThread).Methods("DELETE")

	r.HandleFunc("/api/replies/{board}", h.GetReplies).Methods("GET")
	r.HandleFunc("/api/replies/{board}", h.CreateReply).Methods("POST")
	r.HandleFunc("/api/replies/{board}", h.ReportReply).Methods("PUT")
	r.HandleFunc("/api/replies/{board}", h.DeleteReply).Methods("DELETE")

	return r
}
