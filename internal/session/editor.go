package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutIsLive = errors.New("workout is live, edit it through the live session")

// ToggleCompleted toggles a set of a completed workout. A finished set is reverted and
// any other set is finished outright: no rest timer runs for a stored workout, so a
// set must never be left resting in one.
func (s *Session) ToggleCompleted(ctx context.Context, workoutID, setID string) (_ workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.togglecompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("workout", workoutID),
		attribute.String("set", setID),
	)

	w, err := s.store.GetWorkout(ctx, workoutID)
	if err != nil {
		return workout.Workout{}, err
	}
	if w.IsLive() {
		return workout.Workout{}, ErrWorkoutIsLive
	}

	exIdx, setIdx, ok := w.FindSet(setID)
	if !ok {
		return workout.Workout{}, workout.ErrSetNotFound
	}

	var next workout.Workout
	if w.Exercises[exIdx].Sets[setIdx].Status == workout.SetStatusFinished {
		next, err = s.engine.Toggle(*w, setID, false)
	} else {
		next, err = s.engine.Finish(*w, setID)
	}
	if err != nil {
		return workout.Workout{}, err
	}

	if err := s.store.SaveWorkout(ctx, next); err != nil {
		return workout.Workout{}, fmt.Errorf("save workout: %w", err)
	}
	if s.history != nil {
		s.history.Invalidate()
	}
	s.metricsManager.CounterSetTransitions.WithLabelValues("toggle_completed").Inc()

	return next, nil
}
