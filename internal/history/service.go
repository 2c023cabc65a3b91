package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymsession/internal/store"
	"github.com/2beens/gymsession/internal/telemetry/metrics"
	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/internal/workout/stats"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultCacheSizeMB = 10
	DefaultCacheTTL    = 10 * time.Minute
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=history_test
type completedWorkoutsLister interface {
	ListCompletedWorkouts(ctx context.Context, params store.ListParams) ([]workout.Workout, error)
}

type difficultyResolver interface {
	ResolveDifficultyType(name string) (workout.DifficultyType, error)
}

type ExerciseHistory struct {
	Exercise string                 `json:"exercise"`
	Type     workout.DifficultyType `json:"type"`
	// Metrics are the chart options, the first one drives personal records
	Metrics []stats.Metric      `json:"metrics"`
	Days    []stats.HistoryDay `json:"days"`
}

type NewServiceParams struct {
	Catalog        difficultyResolver
	Store          completedWorkoutsLister
	MetricsManager *metrics.Manager
	CacheSizeMB    int
	CacheTTL       time.Duration
}

type Service struct {
	catalog        difficultyResolver
	store          completedWorkoutsLister
	metricsManager *metrics.Manager
	cache          *freecache.Cache
	cacheTTL       time.Duration
}

func NewService(params NewServiceParams) *Service {
	cacheSizeMB := params.CacheSizeMB
	if cacheSizeMB <= 0 {
		cacheSizeMB = DefaultCacheSizeMB
	}
	cacheTTL := params.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	megabyte := 1024 * 1024
	return &Service{
		catalog:        params.Catalog,
		store:          params.Store,
		metricsManager: params.MetricsManager,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		cacheTTL:       cacheTTL,
	}
}

// ExerciseHistory returns the per-day history of the named exercise over all
// completed workouts, most recent day first.
func (s *Service) ExerciseHistory(ctx context.Context, name string, bodyweight float64) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.exercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("exercise", name))

	dt, err := s.catalog.ResolveDifficultyType(name)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("history::%s::%g", strings.ToLower(strings.TrimSpace(name)), bodyweight)
	if historyBytes, err := s.cache.Get([]byte(cacheKey)); err == nil {
		h := &ExerciseHistory{}
		if err := json.Unmarshal(historyBytes, h); err == nil {
			s.metricsManager.CounterHistoryCacheHits.Inc()
			// metric funcs don't survive json
			h.Metrics = stats.MetricOptions(dt, bodyweight)
			return h, nil
		} else {
			log.Errorf("failed to unmarshal cached history for %s: %s", name, err)
		}
	}
	s.metricsManager.CounterHistoryCacheMisses.Inc()

	workouts, err := s.store.ListCompletedWorkouts(ctx, store.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}

	options := stats.MetricOptions(dt, bodyweight)
	var topline stats.MetricFunc
	if len(options) > 0 {
		topline = options[0].Value
	}

	h := &ExerciseHistory{
		Exercise: name,
		Type:     dt,
		Metrics:  options,
		Days:     stats.ComputeHistory(stats.CompletionsOf(workouts, name), dt, topline),
	}

	historyBytes, err := json.Marshal(h)
	if err != nil {
		log.Errorf("failed to marshal history for %s: %s", name, err)
		return h, nil
	}
	if err := s.cache.Set([]byte(cacheKey), historyBytes, int(s.cacheTTL.Seconds())); err != nil {
		log.Errorf("failed to write history cache for %s: %s", name, err)
	} else {
		log.Tracef("history cache set for exercise: %s", name)
	}

	return h, nil
}

// Invalidate drops all cached histories. Called whenever the set of completed workouts changes.
func (s *Service) Invalidate() {
	s.cache.Clear()
}
