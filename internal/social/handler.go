package social

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type statsAggregator interface {
	Stats(ctx context.Context, credential string) (*StatsView, error)
}

type Handler struct {
	aggregator statsAggregator
}

func NewHandler(aggregator statsAggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/social/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("social-stats")
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.stats")
	defer span.End()

	creds, _ := auth.FromContext(ctx)
	stats, err := h.aggregator.Stats(ctx, creds.Token)
	switch {
	case err == nil:
		pkg.WriteJSONResponse(w, http.StatusOK, stats)
	case errors.Is(err, ErrMissingCredential):
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrSourceUnavailable):
		pkg.WriteErrorResponse(w, http.StatusBadGateway, ErrSourceUnavailable.Error())
	default:
		log.Errorf("social stats: %s", err)
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, ErrSourceUnavailable.Error())
	}
}
