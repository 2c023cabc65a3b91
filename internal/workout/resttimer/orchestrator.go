package resttimer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymsession/internal/cue"
	"github.com/2beens/gymsession/internal/telemetry/metrics"
	"github.com/2beens/gymsession/internal/workout"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=orchestrator_mocks_test.go -package=resttimer_test

// FinishingThreshold is how long before the end of a rest the "about to finish" cue fires.
const FinishingThreshold = 5 * time.Second

const DefaultTickPeriod = time.Second

type liveWorkout interface {
	Workout() (workout.Workout, bool)
	FinishRest(ctx context.Context, setID string) error
}

type cuePlayer interface {
	Play(ctx context.Context, id cue.ID) error
	Stop(ctx context.Context, id cue.ID) error
}

type NewOrchestratorParams struct {
	Live           liveWorkout
	Player         cuePlayer
	MetricsManager *metrics.Manager
	TickPeriod     time.Duration
	Now            workout.Clock
}

// Orchestrator advances the resting set of the live workout as wall-clock time passes.
// Every tick recomputes the rest end from the absolute rest start, so missed or
// coalesced ticks are harmless.
type Orchestrator struct {
	live           liveWorkout
	player         cuePlayer
	metricsManager *metrics.Manager
	tickPeriod     time.Duration
	now            workout.Clock

	mu sync.Mutex
	// rest keys (set id + rest start) of the cue that is currently playing and of the
	// last rest finished by the timer
	cuedRest     string
	finishedRest string
}

func NewOrchestrator(params NewOrchestratorParams) *Orchestrator {
	o := &Orchestrator{
		live:           params.Live,
		player:         params.Player,
		metricsManager: params.MetricsManager,
		tickPeriod:     params.TickPeriod,
		now:            params.Now,
	}
	if o.tickPeriod <= 0 {
		o.tickPeriod = DefaultTickPeriod
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.player == nil {
		o.player = cue.LogPlayer{}
	}
	return o
}

// Run ticks until ctx is done, then stops any playing cue.
func (o *Orchestrator) Run(ctx context.Context) {
	ticker := time.NewTicker(o.tickPeriod)
	defer ticker.Stop()

	log.Debugf("rest timer started, tick period: %s", o.tickPeriod)
	for {
		select {
		case <-ctx.Done():
			o.Reset(context.WithoutCancel(ctx))
			log.Debugln("rest timer stopped")
			return
		case <-ticker.C:
			o.Tick(ctx, o.now())
		}
	}
}

// Tick reconciles the live workout against now. Calling it again with the same now
// is a no-op.
func (o *Orchestrator) Tick(ctx context.Context, now time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w, ok := o.live.Workout()
	if !ok {
		o.stopCue(ctx)
		return
	}

	activity := workout.Resolve(w)
	if activity.Type != workout.ActivityResting {
		o.stopCue(ctx)
		return
	}

	set := activity.Set
	finishAt, ok := set.RestFinishAt()
	if !ok {
		o.stopCue(ctx)
		return
	}
	restKey := restKeyOf(*set)

	// the resting set changed under a playing cue
	if o.cuedRest != "" && o.cuedRest != restKey {
		o.stopCue(ctx)
	}

	remaining := finishAt.Sub(now)
	switch {
	case remaining <= 0:
		if o.finishedRest == restKey {
			return
		}
		if err := o.live.FinishRest(ctx, set.ID); err != nil {
			// retried on the next tick
			log.Errorf("rest timer: finish rest of set [%s]: %s", set.ID, err)
			return
		}
		o.finishedRest = restKey
		o.stopCue(ctx)
		o.play(ctx, cue.RestFinished)
		if o.metricsManager != nil {
			o.metricsManager.CounterRestsAutoFinished.Inc()
		}
		log.Debugf("rest timer: set [%s] finished after %s", set.ID, set.Rest())
	case remaining < FinishingThreshold:
		if o.cuedRest == restKey {
			return
		}
		o.play(ctx, cue.RestFinishing)
		o.cuedRest = restKey
	default:
		// rest was extended past the threshold again
		o.stopCue(ctx)
	}
}

// Reset stops any playing cue and forgets the per-rest state.
func (o *Orchestrator) Reset(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopCue(ctx)
	o.finishedRest = ""
}

func (o *Orchestrator) stopCue(ctx context.Context) {
	if o.cuedRest == "" {
		return
	}
	o.cuedRest = ""
	if err := o.player.Stop(ctx, cue.RestFinishing); err != nil {
		log.Warnf("rest timer: stop cue [%s]: %s", cue.RestFinishing, err)
	}
}

func (o *Orchestrator) play(ctx context.Context, id cue.ID) {
	if o.metricsManager != nil {
		o.metricsManager.CounterCuesPlayed.WithLabelValues(id.String()).Inc()
	}
	if err := o.player.Play(ctx, id); err != nil {
		log.Warnf("rest timer: play cue [%s]: %s", id, err)
	}
}

func restKeyOf(set workout.Set) string {
	return fmt.Sprintf("%s@%d", set.ID, set.RestStartedAt.UnixNano())
}
