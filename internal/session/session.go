package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymsession/internal/cue"
	"github.com/2beens/gymsession/internal/telemetry/metrics"
	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/internal/workout/resttimer"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoLiveWorkout      = errors.New("no live workout")
	ErrWorkoutAlreadyLive = errors.New("a workout is already live")
	ErrUnfinishedSets     = errors.New("workout has unfinished sets")
	ErrInvalidStart       = errors.New("start from either a routine or a past workout, not both")
)

const persistTimeout = 10 * time.Second

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=session_test
type workoutStore interface {
	GetWorkout(ctx context.Context, id string) (*workout.Workout, error)
	GetRoutine(ctx context.Context, id string) (*workout.Routine, error)
	SaveWorkout(ctx context.Context, w workout.Workout) error
}

type liveSnapshot interface {
	SaveLive(ctx context.Context, w workout.Workout) error
	GetLive(ctx context.Context) (workout.Workout, bool, error)
	ClearLive(ctx context.Context) error
}

type exerciseCatalog interface {
	ResolveDifficultyType(name string) (workout.DifficultyType, error)
}

type historyInvalidator interface {
	Invalidate()
}

type restTimer interface {
	Run(ctx context.Context)
}

// StartParams picks how a workout starts: from a routine, as a repeat of a past
// workout, or empty when both ids are blank.
type StartParams struct {
	Name       string  `json:"name"`
	RoutineID  string  `json:"routineId,omitempty"`
	WorkoutID  string  `json:"workoutId,omitempty"`
	Bodyweight float64 `json:"bodyweight,omitempty"`
}

type NewSessionParams struct {
	Store             workoutStore
	Snapshot          liveSnapshot
	Catalog           exerciseCatalog
	History           historyInvalidator
	CuePlayer         cue.Player
	MetricsManager    *metrics.Manager
	RestTimerTick     time.Duration
	DefaultBodyweight float64
	Now               workout.Clock
	NewID             workout.IDGenerator
}

// Session owns the single live workout. HTTP handlers and the rest timer both
// reach it, so every access goes through mu. Nothing called while holding mu
// may call back into the rest timer.
type Session struct {
	store             workoutStore
	snapshot          liveSnapshot
	catalog           exerciseCatalog
	history           historyInvalidator
	metricsManager    *metrics.Manager
	engine            *workout.Engine
	manager           *workout.Manager
	restTimer         restTimer
	defaultBodyweight float64
	now               workout.Clock

	mu          sync.Mutex
	live        *workout.Workout
	timerCancel context.CancelFunc
	persistSeq  uint64

	timerWG   sync.WaitGroup
	persistWG sync.WaitGroup

	// guards persistedSeq, so saves land in mutation order, and the retry slot
	persistMu    sync.Mutex
	persistedSeq uint64
	// finished workout the store refused; it leaves the live mirror only once saved
	unsaved         *workout.Workout
	unsavedMirrored bool
}

func NewSession(params NewSessionParams) *Session {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		store:             params.Store,
		snapshot:          params.Snapshot,
		catalog:           params.Catalog,
		history:           params.History,
		metricsManager:    params.MetricsManager,
		engine:            workout.NewEngine(now, params.NewID),
		manager:           workout.NewManager(now, params.NewID),
		defaultBodyweight: params.DefaultBodyweight,
		now:               now,
	}

	s.restTimer = resttimer.NewOrchestrator(resttimer.NewOrchestratorParams{
		Live:           s,
		Player:         params.CuePlayer,
		MetricsManager: params.MetricsManager,
		TickPeriod:     params.RestTimerTick,
		Now:            now,
	})

	return s
}

func (s *Session) Start(ctx context.Context, params StartParams) (_ workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if params.RoutineID != "" && params.WorkoutID != "" {
		return workout.Workout{}, ErrInvalidStart
	}
	if s.hasLive() {
		return workout.Workout{}, ErrWorkoutAlreadyLive
	}

	bodyweight := params.Bodyweight
	if bodyweight <= 0 {
		bodyweight = s.defaultBodyweight
	}

	var w workout.Workout
	switch {
	case params.RoutineID != "":
		span.SetAttributes(attribute.String("routine", params.RoutineID))
		routine, err := s.store.GetRoutine(ctx, params.RoutineID)
		if err != nil {
			return workout.Workout{}, fmt.Errorf("get routine: %w", err)
		}
		w = s.manager.CreateFromRoutine(*routine, bodyweight)
	case params.WorkoutID != "":
		span.SetAttributes(attribute.String("repeat", params.WorkoutID))
		past, err := s.store.GetWorkout(ctx, params.WorkoutID)
		if err != nil {
			return workout.Workout{}, fmt.Errorf("get workout: %w", err)
		}
		w = s.manager.CreateFromWorkout(*past, bodyweight)
	default:
		w = s.manager.CreateEmpty(params.Name)
	}
	if params.Name != "" {
		w.Name = params.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another start may have won while the template was loading
	if s.live != nil {
		return workout.Workout{}, ErrWorkoutAlreadyLive
	}

	s.live = &w
	s.startTimer()
	s.persist(w)

	s.metricsManager.CounterWorkoutsStarted.Inc()
	s.metricsManager.GaugeLiveWorkout.Set(1)
	log.Debugf("session: workout [%s] started with %d exercises", w.ID, len(w.Exercises))

	return w.Clone(), nil
}

// Resume restores the live workout mirrored before a restart, if there is one.
func (s *Session) Resume(ctx context.Context) (_ workout.Workout, ok bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.resume")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live != nil {
		return s.live.Clone(), true, nil
	}

	w, ok, err := s.snapshot.GetLive(ctx)
	if err != nil {
		return workout.Workout{}, false, err
	}
	if !ok {
		return workout.Workout{}, false, nil
	}
	if !w.IsLive() {
		// finished before the restart, but its save never landed
		s.persistMu.Lock()
		s.unsaved, s.unsavedMirrored = &w, true
		s.retryUnsaved(ctx)
		s.persistMu.Unlock()
		return workout.Workout{}, false, nil
	}

	s.live = &w
	s.startTimer()
	s.metricsManager.GaugeLiveWorkout.Set(1)
	log.Infof("session: resumed live workout [%s]", w.ID)

	return w.Clone(), true, nil
}

// Workout returns a copy of the live workout.
func (s *Session) Workout() (workout.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == nil {
		return workout.Workout{}, false
	}
	return s.live.Clone(), true
}

func (s *Session) Activity() (workout.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == nil {
		return workout.Activity{}, ErrNoLiveWorkout
	}
	return workout.Resolve(*s.live), nil
}

func (s *Session) Toggle(ctx context.Context, setID string) (workout.Workout, error) {
	return s.mutate(ctx, "toggle", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.Toggle(w, setID, true)
	})
}

func (s *Session) FinishOrRest(ctx context.Context, setID string) (workout.Workout, error) {
	return s.mutate(ctx, "finish_or_rest", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.FinishOrRest(w, setID)
	})
}

// FinishSet closes a set straight away, skipping any pending rest.
func (s *Session) FinishSet(ctx context.Context, setID string) (workout.Workout, error) {
	return s.mutate(ctx, "finish", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.Finish(w, setID)
	})
}

// FinishRest ends the rest of setID. It is a no-op when the set is no longer
// resting, e.g. the user finished it while the timer was about to.
func (s *Session) FinishRest(ctx context.Context, setID string) error {
	_, err := s.mutate(ctx, "finish_rest", func(w workout.Workout) (workout.Workout, error) {
		set, ok := w.Set(setID)
		if !ok {
			return w, workout.ErrSetNotFound
		}
		if set.Status != workout.SetStatusResting {
			return w, errNoChange
		}
		return s.engine.Finish(w, setID)
	})
	if errors.Is(err, errNoChange) {
		return nil
	}
	return err
}

func (s *Session) Unstart(ctx context.Context, setID string) (workout.Workout, error) {
	return s.mutate(ctx, "unstart", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.Unstart(w, setID)
	})
}

func (s *Session) UpdateRestDuration(ctx context.Context, setID string, seconds int) (workout.Workout, error) {
	return s.mutate(ctx, "update_rest", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.UpdateRestDuration(w, setID, seconds)
	})
}

func (s *Session) DuplicateLastSet(ctx context.Context, exerciseID string) (workout.Workout, error) {
	return s.mutate(ctx, "duplicate_set", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.DuplicateLastSet(w, exerciseID)
	})
}

func (s *Session) RemoveSet(ctx context.Context, setID string) (workout.Workout, error) {
	return s.mutate(ctx, "remove_set", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.RemoveSet(w, setID)
	})
}

func (s *Session) UpdateDifficulty(ctx context.Context, setID string, d workout.Difficulty) (workout.Workout, error) {
	return s.mutate(ctx, "update_difficulty", func(w workout.Workout) (workout.Workout, error) {
		exIdx, setIdx, ok := w.FindSet(setID)
		if !ok {
			return w, workout.ErrSetNotFound
		}
		dt := s.exerciseType(w.Exercises[exIdx], w.Exercises[exIdx].Sets[setIdx])
		return s.engine.UpdateDifficulty(w, setID, dt, d)
	})
}

func (s *Session) UpdateNote(ctx context.Context, exerciseID, note string) (workout.Workout, error) {
	return s.mutate(ctx, "update_note", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.UpdateNote(w, exerciseID, note)
	})
}

// AddExercise appends a catalog exercise to the live workout.
func (s *Session) AddExercise(ctx context.Context, name string, restSeconds int) (workout.Workout, error) {
	dt, err := s.catalog.ResolveDifficultyType(name)
	if err != nil {
		return workout.Workout{}, err
	}
	return s.mutate(ctx, "add_exercise", func(w workout.Workout) (workout.Workout, error) {
		return s.engine.AddExercise(w, name, dt, restSeconds)
	})
}

// Finish ends the live workout. Unfinished sets are only wrapped up when wrapUp is set,
// otherwise ErrUnfinishedSets is returned and the workout stays live.
func (s *Session) Finish(ctx context.Context, wrapUp bool) (_ workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.finish")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Bool("wrapup", wrapUp))

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live == nil {
		return workout.Workout{}, ErrNoLiveWorkout
	}

	w := *s.live
	if workout.HasUnfinishedSets(w) {
		if !wrapUp {
			return workout.Workout{}, ErrUnfinishedSets
		}
		w = s.manager.WrapUpSets(w)
	}
	w = s.manager.Finish(w)

	s.live = nil
	s.stopTimer()
	s.persist(w)

	s.metricsManager.CounterWorkoutsFinished.Inc()
	s.metricsManager.GaugeLiveWorkout.Set(0)
	s.metricsManager.HistWorkoutDuration.Observe(w.EndedAt.Sub(w.StartedAt).Seconds())
	log.Debugf("session: workout [%s] finished", w.ID)

	return w.Clone(), nil
}

// Flush waits until every pending save landed, and retries a finished workout
// the store refused before.
func (s *Session) Flush() {
	s.persistWG.Wait()

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	s.retryUnsaved(ctx)
}

// Close stops the rest timer and waits for pending saves. The live workout stays
// mirrored, so a new process can resume it.
func (s *Session) Close() {
	s.mu.Lock()
	s.stopTimer()
	s.mu.Unlock()

	s.timerWG.Wait()
	s.Flush()
}

var errNoChange = errors.New("no change")

func (s *Session) mutate(
	ctx context.Context,
	op string,
	update func(w workout.Workout) (workout.Workout, error),
) (_ workout.Workout, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "session."+op)
	defer func() {
		if errors.Is(err, errNoChange) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live == nil {
		return workout.Workout{}, ErrNoLiveWorkout
	}

	next, err := update(*s.live)
	if err != nil {
		return s.live.Clone(), err
	}

	s.live = &next
	s.persist(next)
	s.metricsManager.CounterSetTransitions.WithLabelValues(op).Inc()

	return next.Clone(), nil
}

func (s *Session) hasLive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live != nil
}

func (s *Session) exerciseType(ex workout.Exercise, set workout.Set) workout.DifficultyType {
	if dt, err := s.catalog.ResolveDifficultyType(ex.Name); err == nil {
		return dt
	}
	// custom exercise, not in the catalog
	if set.Difficulty != nil {
		return set.Difficulty.Type()
	}
	return ""
}

// startTimer must be called with mu held.
func (s *Session) startTimer() {
	if s.timerCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.timerCancel = cancel

	s.timerWG.Add(1)
	go func() {
		defer s.timerWG.Done()
		s.restTimer.Run(ctx)
	}()
}

// stopTimer must be called with mu held. It only cancels, the rest timer may be
// waiting on mu inside a tick.
func (s *Session) stopTimer() {
	if s.timerCancel == nil {
		return
	}
	s.timerCancel()
	s.timerCancel = nil
}

// persist hands w to the store in the background. Must be called with mu held.
func (s *Session) persist(w workout.Workout) {
	s.persistSeq++
	seq := s.persistSeq
	w = w.Clone()

	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()

		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		if seq < s.persistedSeq {
			// a newer value already landed
			return
		}
		s.persistedSeq = seq

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if s.unsaved != nil && s.unsaved.ID != w.ID {
			s.retryUnsaved(ctx)
		}
		s.saveWorkout(ctx, w)
	}()
}

// saveWorkout must be called with persistMu held.
func (s *Session) saveWorkout(ctx context.Context, w workout.Workout) {
	saveErr := s.store.SaveWorkout(ctx, w)
	if saveErr != nil {
		s.metricsManager.CounterPersistFailures.Inc()
		log.Errorf("session: save workout [%s]: %s", w.ID, saveErr)
	}

	if w.IsLive() {
		if err := s.snapshot.SaveLive(ctx, w); err != nil {
			log.Warnf("session: mirror live workout [%s]: %s", w.ID, err)
			return
		}
		// the mirror now holds this workout, not an unsaved finished one
		s.unsavedMirrored = false
		return
	}

	if saveErr != nil {
		s.unsaved, s.unsavedMirrored = &w, false
		if err := s.snapshot.SaveLive(ctx, w); err != nil {
			log.Warnf("session: mirror unsaved workout [%s]: %s", w.ID, err)
			return
		}
		s.unsavedMirrored = true
		return
	}

	if s.unsaved != nil && s.unsaved.ID == w.ID {
		s.unsaved = nil
	}
	s.finished(ctx, w, true)
}

// retryUnsaved must be called with persistMu held.
func (s *Session) retryUnsaved(ctx context.Context) {
	if s.unsaved == nil {
		return
	}
	w := *s.unsaved

	if err := s.store.SaveWorkout(ctx, w); err != nil {
		s.metricsManager.CounterPersistFailures.Inc()
		log.Errorf("session: retry save workout [%s]: %s", w.ID, err)
		return
	}

	mirrored := s.unsavedMirrored
	s.unsaved, s.unsavedMirrored = nil, false
	log.Infof("session: finished workout [%s] saved on retry", w.ID)
	s.finished(ctx, w, mirrored)
}

// finished runs once a finished workout is in the store.
func (s *Session) finished(ctx context.Context, w workout.Workout, clearMirror bool) {
	if clearMirror {
		if err := s.snapshot.ClearLive(ctx); err != nil {
			log.Warnf("session: clear live workout [%s]: %s", w.ID, err)
		}
	}
	if s.history != nil {
		s.history.Invalidate()
	}
}
