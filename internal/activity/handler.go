package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/fitness"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

type activityService interface {
	LogActivity(ctx context.Context, userID string, in NewActivity) (*Activity, error)
	Activities(ctx context.Context, userID string, filter Filter) iter.Seq2[*Activity, error]
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type TypeInfo struct {
	Type fitness.ActivityType `json:"type"`
	MET  float64              `json:"met"`
}

type Handler struct {
	service activityService
}

func NewHandler(service activityService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the activity routes. logMiddlewares wrap only the
// log endpoint (rate limiting).
func (h *Handler) SetupRoutes(r *mux.Router, logMiddlewares ...mux.MiddlewareFunc) {
	var logHandler http.Handler = http.HandlerFunc(h.HandleLog)
	for i := len(logMiddlewares) - 1; i >= 0; i-- {
		logHandler = logMiddlewares[i](logHandler)
	}

	r.Handle("/activity/log", logHandler).Methods("POST", "OPTIONS").Name("activity-log")
	r.HandleFunc("/activity/list", h.HandleList).Methods("GET", "OPTIONS").Name("activity-list")
	r.HandleFunc("/activity/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("activity-summary")
	r.HandleFunc("/activity/types", h.HandleTypes).Methods("GET", "OPTIONS").Name("activity-types")
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.log")
	defer span.End()

	creds, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in NewActivity
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("log activity, unmarshal json: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity payload")
		return
	}

	activity, err := h.service.LogActivity(ctx, creds.UserID, in)
	if err != nil {
		writeServiceError(w, "log activity", err)
		return
	}
	span.SetAttributes(attribute.String("activity.id", activity.ID))

	log.Debugf("new activity logged [%s] [%s] for user [%s]", activity.ID, activity.Type, activity.UserID)
	pkg.WriteJSONResponse(w, http.StatusCreated, activity)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.list")
	defer span.End()

	creds, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	activities, err := Collect(h.service.Activities(ctx, creds.UserID, filter))
	if err != nil {
		writeServiceError(w, "list activities", err)
		return
	}
	span.SetAttributes(attribute.Int("activities", len(activities)))

	pkg.WriteJSONResponse(w, http.StatusOK, activities)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.summary")
	defer span.End()

	creds, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.service.Summary(ctx, creds.UserID)
	if err != nil {
		writeServiceError(w, "activity summary", err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, summary)
}

func (h *Handler) HandleTypes(w http.ResponseWriter, _ *http.Request) {
	types := fitness.ActivityTypes()
	resp := make([]TypeInfo, 0, len(types))
	for _, t := range types {
		resp = append(resp, TypeInfo{Type: t, MET: t.MET()})
	}
	pkg.WriteJSONResponse(w, http.StatusOK, resp)
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	var vErr *fitness.ValidationError
	if errors.As(err, &vErr) {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, vErr.Error())
		return
	}
	log.Errorf("%s: %s", op, err)
	pkg.WriteErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("failed to %s", op))
}

func filterFromQuery(r *http.Request) (Filter, error) {
	var filter Filter
	query := r.URL.Query()

	if rawType := query.Get("type"); rawType != "" {
		actType, err := fitness.ParseActivityType(rawType)
		if err != nil {
			return Filter{}, err
		}
		filter.Type = actType
	}

	startDate, err := parseDate(query.Get("startDate"), false)
	if err != nil {
		return Filter{}, fitness.NewValidationError("startDate", err.Error())
	}
	filter.StartDate = startDate

	endDate, err := parseDate(query.Get("endDate"), true)
	if err != nil {
		return Filter{}, fitness.NewValidationError("endDate", err.Error())
	}
	filter.EndDate = endDate

	return filter, nil
}

// parseDate accepts RFC3339 or YYYY-MM-DD (UTC). A date-only end of range
// covers the whole day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date [%s], expected RFC3339 or YYYY-MM-DD", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
