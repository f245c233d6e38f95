package stats

import (
	"context"
	"log/slog"
	"net/http"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type statsService interface {
	GetSummary(ctx context.Context) (*api.AnalyticsResponse, error)
}

type StatsHandler struct {
	log     *slog.Logger
	service statsService
}

func NewStatsHandler(log *slog.Logger, s statsService) *StatsHandler {
	return &StatsHandler{
		log:     log,
		service: s,
	}
}

func (h *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.GetSummary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.GetSummary(ctx)
	if err != nil {
		log.Error("error while retrieving analytics summary", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}
	render.JSON(w, r, resp)
}
