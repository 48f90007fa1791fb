package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mizan/internal/logger"
)

// SetupRouter wires the ledger API under /api/v1.
func SetupRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(loggingMiddleware)

	api.HandleFunc("/accounts", h.ListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/entries", h.CreateEntry).Methods(http.MethodPost)
	api.HandleFunc("/entries", h.ListEntries).Methods(http.MethodGet)
	api.HandleFunc("/entries/{id}", h.DeleteEntry).Methods(http.MethodDelete)
	api.HandleFunc("/trial-balance", h.TrialBalance).Methods(http.MethodGet)
	api.HandleFunc("/trial-balance/validation", h.ValidateTrialBalance).Methods(http.MethodGet)
	api.HandleFunc("/balances", h.ListBalances).Methods(http.MethodGet)
	api.HandleFunc("/periods/{period}/close", h.ClosePeriod).Methods(http.MethodPost)

	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.L().Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
