package social

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=social_test

const DefaultSourceTimeout = 5 * time.Second

type sources interface {
	Friends(ctx context.Context, credential string) ([]Friend, error)
	Challenges(ctx context.Context, credential string) ([]Challenge, error)
	Points(ctx context.Context, credential string) (*Points, error)
	Badges(ctx context.Context, credential string) ([]Badge, error)
}

type Aggregator struct {
	sources        sources
	sourceTimeout  time.Duration
	metricsManager *metrics.Manager
}

func NewAggregator(sources sources, sourceTimeout time.Duration, metricsManager *metrics.Manager) *Aggregator {
	if sourceTimeout <= 0 {
		sourceTimeout = DefaultSourceTimeout
	}
	return &Aggregator{
		sources:        sources,
		sourceTimeout:  sourceTimeout,
		metricsManager: metricsManager,
	}
}

// Stats fetches the four sources concurrently and joins them into one view.
// Any failing source fails the whole aggregation with ErrSourceUnavailable.
func (a *Aggregator) Stats(ctx context.Context, credential string) (_ *StatsView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "social.aggregator.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(credential) == "" {
		return nil, ErrMissingCredential
	}

	if a.metricsManager != nil {
		defer func(begin time.Time) {
			a.metricsManager.HistSocialAggregationDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	var (
		friends    []Friend
		challenges []Challenge
		points     *Points
		badges     []Badge
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.fetch(gCtx, SourceFriends, func(ctx context.Context) (err error) {
			friends, err = a.sources.Friends(ctx, credential)
			return err
		})
	})
	g.Go(func() error {
		return a.fetch(gCtx, SourceChallenges, func(ctx context.Context) (err error) {
			challenges, err = a.sources.Challenges(ctx, credential)
			return err
		})
	})
	g.Go(func() error {
		return a.fetch(gCtx, SourcePoints, func(ctx context.Context) (err error) {
			points, err = a.sources.Points(ctx, credential)
			return err
		})
	})
	g.Go(func() error {
		return a.fetch(gCtx, SourceBadges, func(ctx context.Context) (err error) {
			badges, err = a.sources.Badges(ctx, credential)
			return err
		})
	})

	if err := g.Wait(); err != nil {
		a.reportFailure(err)
		return nil, ErrSourceUnavailable
	}

	return join(friends, challenges, points, badges), nil
}

func (a *Aggregator) fetch(ctx context.Context, source string, fetchFunc func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	if err := fetchFunc(ctx); err != nil {
		return &SourceError{Source: source, Err: err}
	}
	return nil
}

func (a *Aggregator) reportFailure(err error) {
	source := "unknown"
	var sourceErr *SourceError
	if errors.As(err, &sourceErr) {
		source = sourceErr.Source
	}
	log.Errorf("social stats aggregation failed: %s", err)
	if a.metricsManager != nil {
		a.metricsManager.CounterSocialSourceFailures.WithLabelValues(source).Inc()
	}
}

func join(friends []Friend, challenges []Challenge, points *Points, badges []Badge) *StatsView {
	view := &StatsView{
		Friends:      len(friends),
		RecentBadges: make([]Badge, 0, recentBadgesLimit),
	}
	for _, c := range challenges {
		if c.Status == challengeStatusActive {
			view.Challenges++
		}
	}
	if points != nil && points.Total != nil {
		view.Points = *points.Total
	}
	if len(badges) > recentBadgesLimit {
		badges = badges[:recentBadgesLimit]
	}
	view.RecentBadges = append(view.RecentBadges, badges...)
	return view
}
