package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"customer-management/internal/api/handler/dto"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewSystemHandler(db Pinger, l *slog.Logger) *SystemHandler {
	return &SystemHandler{db: db, logger: l.With("component", "SystemHandler")}
}

// Root handles GET /
// @Summary Welcome message
// @Tags System
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.WelcomeResponse{
		Message: "Customer management API",
		Docs:    "/swagger/index.html",
	})
}

// Health handles GET /health
// @Summary Liveness and database health
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "unknown"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WarnContext(r.Context(), "Health check failed: database unreachable", "error", err)
		respondJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
