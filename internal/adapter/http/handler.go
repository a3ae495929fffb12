package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gtm-engine/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the modeling usecase and a
// structured logger, and registers all routes on a chi.Router.
type Handler struct {
	svc    port.ModelUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. allowedOrigins
// is the CORS allow-list for the external dashboard UI.
func NewHandler(svc port.ModelUseCase, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(requestMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/model/compute", h.handleCompute)
		r.Post("/model/validate", h.handleValidate)
		r.Post("/model/reverse", h.handleReverse)
		r.Post("/model/sensitivity", h.handleSensitivity)
		r.Post("/model/compare", h.handleCompare)

		r.Post("/scenarios", h.handleSaveScenario)
		r.Get("/scenarios", h.handleListScenarios)
		r.Get("/scenarios/{id}", h.handleGetScenario)
		r.Delete("/scenarios/{id}", h.handleDeleteScenario)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with a JSON content type. Encoding failures are
// logged; headers are already gone at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP statuses. Validation failures
// become 422 with the full issue list so a UI can render every problem at
// once; unknown errors are logged and become opaque 500s.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verr.Issues})
	case errors.Is(err, port.ErrScenarioNotFound):
		http.Error(w, "scenario not found", http.StatusNotFound)
	case errors.Is(err, port.ErrDuplicateName):
		http.Error(w, "scenario name already exists", http.StatusConflict)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
