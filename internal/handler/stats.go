package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// StatsProvider reports aggregated generation statistics.
type StatsProvider interface {
	Summary(ctx context.Context) (model.StatsResponse, error)
}

// StatsHandler handles HTTP requests for generation statistics.
type StatsHandler struct {
	service StatsProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc StatsProvider) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Summary(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrStatsUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
			return
		}
		slog.Error("loading generation stats failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if sub, ok := middleware.SubjectFromContext(r.Context()); ok {
		slog.Info("generation stats served", "subject", sub, "total", resp.Total)
	}

	writeJSON(w, http.StatusOK, resp)
}
