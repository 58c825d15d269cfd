package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/fitstats/internal/fitness"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const summaryCacheSize = 10 * 1024 * 1024

var ErrUserIDEmpty = errors.New("user id empty")

type Service struct {
	store          Store
	publisher      Publisher
	metricsManager *metrics.Manager
	summaryCache   *freecache.Cache
	summaryTTL     time.Duration
	// userID -> *atomic.Uint64, bumped on every stored activity
	generations sync.Map

	// overridable in tests
	now   func() time.Time
	newID func() string
}

// NewService creates the activity log service. Summaries are cached per user
// for summaryTTL, a non-positive TTL disables caching.
func NewService(
	store Store,
	publisher Publisher,
	metricsManager *metrics.Manager,
	summaryTTL time.Duration,
) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{
		store:          store,
		publisher:      publisher,
		metricsManager: metricsManager,
		summaryCache:   freecache.NewCache(summaryCacheSize),
		summaryTTL:     summaryTTL,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// LogActivity validates the input, computes the burned calories and stores
// the record with a single write. Input errors are *fitness.ValidationError.
func (s *Service) LogActivity(ctx context.Context, userID string, in NewActivity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}

	activity, err := s.newActivity(userID, in)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("activity.id", activity.ID))
	span.SetAttributes(attribute.String("activity.type", activity.Type.String()))

	if err := s.store.Add(ctx, activity); err != nil {
		return nil, fmt.Errorf("store activity: %w", err)
	}

	s.invalidateSummary(userID)
	if s.metricsManager != nil {
		s.metricsManager.CounterActivitiesLogged.WithLabelValues(activity.Type.String()).Inc()
	}

	// best effort, the activity is already stored
	if err := s.publisher.Publish(ctx, activity); err != nil {
		log.Errorf("publish activity logged event [%s]: %s", activity.ID, err)
	}

	return activity, nil
}

func (s *Service) newActivity(userID string, in NewActivity) (*Activity, error) {
	actType, err := fitness.ParseActivityType(in.Type)
	if err != nil {
		return nil, err
	}

	if in.Distance != nil && !nonNegative(*in.Distance) {
		return nil, fitness.NewValidationError("distance", "distance must be a non-negative number of kilometers")
	}

	var weight float64
	if in.UserWeight != nil {
		if !nonNegative(*in.UserWeight) {
			return nil, fitness.NewValidationError("userWeight", "userWeight must be a non-negative number of kilograms")
		}
		weight = *in.UserWeight
	}

	calories, err := fitness.CalculateCalories(fitness.CalorieInput{
		Type:       actType,
		Duration:   in.Duration,
		UserWeight: weight,
	})
	if err != nil {
		return nil, err
	}

	activity := &Activity{
		ID:             s.newID(),
		UserID:         userID,
		Type:           actType,
		Duration:       in.Duration,
		Distance:       in.Distance,
		UserWeight:     in.UserWeight,
		Timestamp:      s.now().UTC().Truncate(time.Microsecond),
		CaloriesBurned: calories,
		Notes:          strings.TrimSpace(in.Notes),
	}
	return activity.clone(), nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Activities returns a lazy, single-use sequence of the user's activities,
// newest first. The store is queried only when the sequence is ranged.
func (s *Service) Activities(ctx context.Context, userID string, filter Filter) iter.Seq2[*Activity, error] {
	if userID == "" {
		return singleUse(errSeq(ErrUserIDEmpty))
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return singleUse(errSeq(fitness.NewValidationError("type", fmt.Sprintf("unknown activity type [%s]", filter.Type))))
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return singleUse(errSeq(fitness.NewValidationError("startDate", "startDate must not be after endDate")))
	}
	return singleUse(s.store.List(ctx, userID, filter))
}

// Summary rolls up the full history of the user. An empty history is not an
// error, it gives an all-zero summary.
func (s *Service) Summary(ctx context.Context, userID string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrUserIDEmpty
	}

	now := s.now()
	// must be read before the store is
	gen := s.generation(userID).Load()
	if cached, ok := s.cachedSummary(userID, now, gen); ok {
		span.SetAttributes(attribute.Bool("cache-hit", true))
		if s.metricsManager != nil {
			s.metricsManager.CounterSummaryCacheHits.Inc()
		}
		return cached, nil
	}

	summary, err := summarize(s.store.List(ctx, userID, Filter{}), now)
	if err != nil {
		return nil, fmt.Errorf("summarize activities: %w", err)
	}

	s.cacheSummary(userID, now, gen, summary)
	return summary, nil
}

// summary cache keys carry the UTC day, so the streak is never served stale
// across midnight, and the user's log generation
func summaryCacheKey(userID string, now time.Time, gen uint64) []byte {
	return []byte(userID + "||" + now.UTC().Format(time.DateOnly) + "||" + strconv.FormatUint(gen, 10))
}

func (s *Service) generation(userID string) *atomic.Uint64 {
	if gen, ok := s.generations.Load(userID); ok {
		return gen.(*atomic.Uint64)
	}
	gen, _ := s.generations.LoadOrStore(userID, new(atomic.Uint64))
	return gen.(*atomic.Uint64)
}

func (s *Service) cachedSummary(userID string, now time.Time, gen uint64) (*Summary, bool) {
	if s.summaryTTL <= 0 {
		return nil, false
	}
	raw, err := s.summaryCache.Get(summaryCacheKey(userID, now, gen))
	if err != nil {
		return nil, false
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		log.Errorf("unmarshal cached summary for [%s]: %s", userID, err)
		return nil, false
	}
	return &summary, true
}

func (s *Service) cacheSummary(userID string, now time.Time, gen uint64, summary *Summary) {
	if s.summaryTTL <= 0 {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal summary for [%s]: %s", userID, err)
		return
	}
	expireSeconds := int(math.Ceil(s.summaryTTL.Seconds()))
	if err := s.summaryCache.Set(summaryCacheKey(userID, now, gen), raw, expireSeconds); err != nil {
		log.Errorf("cache summary for [%s]: %s", userID, err)
	}
}

// invalidateSummary must run after the activity is stored
func (s *Service) invalidateSummary(userID string) {
	prev := s.generation(userID).Add(1) - 1
	if s.summaryTTL <= 0 {
		return
	}
	s.summaryCache.Del(summaryCacheKey(userID, s.now(), prev))
}
