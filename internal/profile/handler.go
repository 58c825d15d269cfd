package profile

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type CompletenessResponse struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile/completeness", h.HandleCompleteness).Methods("POST", "OPTIONS").Name("profile-completeness")
}

func (h *Handler) HandleCompleteness(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.completeness")
	defer span.End()

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("profile completeness, unmarshal json: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid profile payload")
		return
	}

	resp := CompletenessResponse{
		Complete:      IsComplete(p),
		MissingFields: MissingFields(p),
	}
	span.SetAttributes(attribute.Bool("profile.complete", resp.Complete))

	pkg.WriteJSONResponse(w, http.StatusOK, resp)
}
