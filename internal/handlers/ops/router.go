// Package ops serves the operations HTTP endpoints.
package ops

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/services/webhook"
)

// PendingLister lists queued deferred actions
type PendingLister interface {
	Pending(ctx context.Context) ([]*models.DeferredAction, error)
}

// StatsReporter reports webhook delivery counters
type StatsReporter interface {
	Stats() webhook.Stats
}

// Handler serves health, deferred queue and webhook stats
type Handler struct {
	deferred PendingLister
	webhooks StatsReporter
	logger   *slog.Logger
}

// New creates the ops handler
func New(deferred PendingLister, webhooks StatsReporter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		deferred: deferred,
		webhooks: webhooks,
		logger:   logger.With("component", "ops"),
	}
}

// NewRouter wires the ops routes
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the ops routes on r
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/deferred", h.handleDeferred)
	r.Get("/webhook/stats", h.handleWebhookStats)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleDeferred(w http.ResponseWriter, r *http.Request) {
	if h.deferred == nil {
		h.respondJSON(w, http.StatusOK, []*models.DeferredAction{})
		return
	}

	pending, err := h.deferred.Pending(r.Context())
	if err != nil {
		h.logger.Error("failed to list deferred actions", "error", err)
		h.respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list deferred actions"})
		return
	}
	if pending == nil {
		pending = []*models.DeferredAction{}
	}

	h.respondJSON(w, http.StatusOK, pending)
}

func (h *Handler) handleWebhookStats(w http.ResponseWriter, r *http.Request) {
	var stats webhook.Stats
	if h.webhooks != nil {
		stats = h.webhooks.Stats()
	}
	h.respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response", "error", err)
	}
}
