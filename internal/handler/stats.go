package handler

import (
	"log/slog"
	"net/http"

	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/service"
)

// StatsHandler serves aggregate usage counters.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests. It must run behind
// JWTAuth, which puts the caller's role in the context.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}
	requestID, _ := middleware.RequestIDFromContext(r.Context())

	resp, err := h.service.Snapshot(r.Context())
	if err != nil {
		slog.Error("reading stats failed", "role", role, "request_id", requestID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	slog.Info("stats served", "role", role, "request_id", requestID, "backend", resp.Backend)
	writeJSON(w, http.StatusOK, resp)
}
