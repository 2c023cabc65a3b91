package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterWorkoutsStarted     prometheus.Counter
	CounterWorkoutsFinished    prometheus.Counter
	CounterSetTransitions      *prometheus.CounterVec
	CounterRestsAutoFinished   prometheus.Counter
	CounterCuesPlayed          *prometheus.CounterVec
	CounterPersistFailures     prometheus.Counter
	CounterHistoryCacheHits    prometheus.Counter
	CounterHistoryCacheMisses  prometheus.Counter

	// gauges
	GaugeRequests    prometheus.Gauge
	GaugeLifeSignal  prometheus.Gauge
	GaugeLiveWorkout prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistWorkoutDuration      prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("gymsession", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymsession", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterWorkoutsStarted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_started",
		Help:      "The total number of started live workouts",
	})
	counterWorkoutsFinished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_finished",
		Help:      "The total number of finished live workouts",
	})
	counterSetTransitions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "set_transitions",
		Help:      "The total number of set lifecycle operations applied",
	}, []string{"op"})
	counterRestsAutoFinished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rests_auto_finished",
		Help:      "The total number of rests finished by the rest timer",
	})
	counterCuesPlayed := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cues_played",
		Help:      "The total number of audio cues triggered",
	}, []string{"cue"})
	counterPersistFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persist_failures",
		Help:      "The total number of failed workout writes",
	})
	counterHistoryCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "history_cache_hits",
		Help:      "Exercise history served from cache",
	})
	counterHistoryCacheMisses := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "history_cache_misses",
		Help:      "Exercise history computed from the store",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeLiveWorkout := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_workout",
		Help:      "1 while a workout is live",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histWorkoutDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				60, 300, 600, 1200, 1800, 2700,
				3600, 5400, 7200, 10800,
			},
			Name: "workout_duration_seconds",
			Help: "Duration of finished workouts in seconds",
		},
	)

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterWorkoutsStarted:     counterWorkoutsStarted,
		CounterWorkoutsFinished:    counterWorkoutsFinished,
		CounterSetTransitions:      counterSetTransitions,
		CounterRestsAutoFinished:   counterRestsAutoFinished,
		CounterCuesPlayed:          counterCuesPlayed,
		CounterPersistFailures:     counterPersistFailures,
		CounterHistoryCacheHits:    counterHistoryCacheHits,
		CounterHistoryCacheMisses:  counterHistoryCacheMisses,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeLiveWorkout:           gaugeLiveWorkout,
		HistogramRequestDuration:   histogramRequestDuration,
		HistWorkoutDuration:        histWorkoutDuration,
	}
}
