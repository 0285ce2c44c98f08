package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"scout-data-service/internal/app/scout"
	"scout-data-service/internal/domain"
	"scout-data-service/internal/logging"
)

// DemoForwarder relays demo-form submissions upstream.
type DemoForwarder interface {
	Forward(ctx context.Context, payload json.RawMessage) error
}

// Handler wires HTTP routes to the query service.
type Handler struct {
	svc       *scout.Service
	forwarder DemoForwarder
	logger    *slog.Logger
	readyFn   func() bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *scout.Service, fwd DemoForwarder, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		svc:       svc,
		forwarder: fwd,
		logger:    logger,
		readyFn:   readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the roster must be loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil && !h.readyFn() {
		writeError(w, r, http.StatusServiceUnavailable, "roster not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// SearchPlayer runs a name search over the roster. A blank or missing query
// yields an empty result, never an error status.
func (h *Handler) SearchPlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger := loggerFromContext(r, h.logger)
		logging.Warn(logger, "search payload not decodable", "err", err)
	}

	views := h.svc.Search(req.PlayerName)
	writeJSON(w, http.StatusOK, views, h.logger)
}

// FilterPlayers runs a position filter query. Any resolution failure
// short-circuits to an empty result set rather than an error status.
func (h *Handler) FilterPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req domain.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger := loggerFromContext(r, h.logger)
		logging.Warn(logger, "filter payload not decodable", "err", err)
		writeJSON(w, http.StatusOK, domain.FilterResponse{Players: []domain.PlayerView{}}, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Filter(req), h.logger)
}

// SubmitDemo forwards the demo-form body upstream. Forwarding failures
// surface as a generic failure, never an internal detail.
func (h *Handler) SubmitDemo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || emptyPayload(payload) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "No form data provided.",
		}, h.logger)
		return
	}

	if h.forwarder == nil {
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success": false,
			"message": "Error submitting form.",
		}, h.logger)
		return
	}

	if err := h.forwarder.Forward(r.Context(), payload); err != nil {
		logger := loggerFromContext(r, h.logger)
		logging.Error(logger, "form forwarding failed", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success": false,
			"message": "Error submitting form.",
		}, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Form submitted successfully.",
	}, h.logger)
}

func emptyPayload(payload json.RawMessage) bool {
	switch string(payload) {
	case "", "null", "{}", "[]":
		return true
	}
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
