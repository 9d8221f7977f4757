// Package api exposes the ledger engine over HTTP with a JSON contract that
// mirrors the engine's operations one to one.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/assistant"
	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/gorilla/mux"
)

// Server routes HTTP requests to the ledger engine.
type Server struct {
	engine     *ledger.Engine
	dispatcher *assistant.Dispatcher
	router     *mux.Router
}

// NewServer builds the HTTP server with all routes registered.
func NewServer(engine *ledger.Engine) *Server {
	s := &Server{
		engine:     engine,
		dispatcher: assistant.NewDispatcher(engine),
		router:     mux.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the root handler for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(logRequests)

	api.HandleFunc("/accounts", s.handleCreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts", s.handleListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id}", s.handleGetAccount).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id}", s.handleUpdateAccount).Methods(http.MethodPatch)

	api.HandleFunc("/cards", s.handleCreateCard).Methods(http.MethodPost)
	api.HandleFunc("/cards", s.handleListCards).Methods(http.MethodGet)
	api.HandleFunc("/cards/{id}", s.handleGetCard).Methods(http.MethodGet)
	api.HandleFunc("/cards/{id}", s.handleUpdateCard).Methods(http.MethodPatch)

	api.HandleFunc("/transactions", s.handleCreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/transactions", s.handleListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", s.handleGetTransaction).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", s.handleUpdateTransaction).Methods(http.MethodPatch)

	api.HandleFunc("/goals", s.handleCreateGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals", s.handleListGoals).Methods(http.MethodGet)
	api.HandleFunc("/goals/{id}", s.handleGetGoal).Methods(http.MethodGet)
	api.HandleFunc("/goals/{id}", s.handleUpdateGoal).Methods(http.MethodPatch)

	api.HandleFunc("/limits", s.handleCreateLimit).Methods(http.MethodPost)
	api.HandleFunc("/limits", s.handleListLimits).Methods(http.MethodGet)
	api.HandleFunc("/limits/{id}", s.handleGetLimit).Methods(http.MethodGet)
	api.HandleFunc("/limits/{id}", s.handleUpdateLimit).Methods(http.MethodPatch)

	api.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}/subcategories", s.handleAddSubcategory).Methods(http.MethodPost)

	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/assistant", s.handleAssistant).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("http request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrUnknownCategory):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrReferenceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrDuplicateEntry):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		common.LogError(err, "request failed", nil)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrValidation
	}
	return nil
}
