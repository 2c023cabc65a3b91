package workout

import (
	"time"
)

// Engine applies set lifecycle transitions. Every operation returns a new Workout
// and leaves its input untouched.
type Engine struct {
	now   Clock
	newID IDGenerator
}

func NewEngine(now Clock, newID IDGenerator) *Engine {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = NewUUID
	}
	return &Engine{
		now:   now,
		newID: newID,
	}
}

// FinishOrRest starts the rest of a set, or finishes it straight away when it has no rest.
func (e *Engine) FinishOrRest(w Workout, setID string) (Workout, error) {
	return e.updateSet(w, setID, func(set *Set) {
		e.finishOrRest(set)
	})
}

// Finish closes a set immediately, used for skip-rest and skip-ahead.
func (e *Engine) Finish(w Workout, setID string) (Workout, error) {
	return e.updateSet(w, setID, func(set *Set) {
		e.finish(set)
	})
}

func (e *Engine) Unstart(w Workout, setID string) (Workout, error) {
	return e.updateSet(w, setID, unstart)
}

// UpdateRestDuration changes the rest of a set, clamped at zero. For a resting set
// this moves its finish time, since that is always derived from restStartedAt.
func (e *Engine) UpdateRestDuration(w Workout, setID string, seconds int) (Workout, error) {
	if seconds < 0 {
		seconds = 0
	}
	return e.updateSet(w, setID, func(set *Set) {
		set.RestDuration = seconds
	})
}

// DuplicateLastSet appends a fresh unstarted set cloned from the exercise's last set.
func (e *Engine) DuplicateLastSet(w Workout, exerciseID string) (Workout, error) {
	exIdx, ok := w.FindExercise(exerciseID)
	if !ok {
		return w, ErrExerciseNotFound
	}

	next := w.Clone()
	exercise := &next.Exercises[exIdx]

	newSet := Set{
		ID:           e.newID(),
		Status:       SetStatusUnstarted,
		RestDuration: exercise.RestDuration,
	}
	if len(exercise.Sets) > 0 {
		last := exercise.Sets[len(exercise.Sets)-1]
		newSet.Difficulty = last.Difficulty
		newSet.RestDuration = last.RestDuration
	}
	exercise.Sets = append(exercise.Sets, newSet)

	return next, nil
}

func (e *Engine) RemoveSet(w Workout, setID string) (Workout, error) {
	exIdx, setIdx, ok := w.FindSet(setID)
	if !ok {
		return w, ErrSetNotFound
	}

	next := w.Clone()
	sets := next.Exercises[exIdx].Sets
	next.Exercises[exIdx].Sets = append(sets[:setIdx:setIdx], sets[setIdx+1:]...)
	return next, nil
}

// UpdateDifficulty replaces the recorded performance of a set. The variant must
// match the type of the owning exercise.
func (e *Engine) UpdateDifficulty(w Workout, setID string, dt DifficultyType, d Difficulty) (Workout, error) {
	if d == nil || d.Type() != dt {
		return w, ErrDifficultyMismatch
	}
	return e.updateSet(w, setID, func(set *Set) {
		set.Difficulty = d
	})
}

func (e *Engine) UpdateNote(w Workout, exerciseID, note string) (Workout, error) {
	exIdx, ok := w.FindExercise(exerciseID)
	if !ok {
		return w, ErrExerciseNotFound
	}
	next := w.Clone()
	next.Exercises[exIdx].Note = note
	return next, nil
}

// AddExercise appends an exercise with a single unstarted set of the zero difficulty for dt.
func (e *Engine) AddExercise(w Workout, name string, dt DifficultyType, restSeconds int) (Workout, error) {
	difficulty, err := NewDifficulty(dt)
	if err != nil {
		return w, err
	}
	if restSeconds < 0 {
		restSeconds = 0
	}

	next := w.Clone()
	next.Exercises = append(next.Exercises, Exercise{
		ID:           e.newID(),
		Name:         name,
		RestDuration: restSeconds,
		Sets: []Set{
			{
				ID:           e.newID(),
				Status:       SetStatusUnstarted,
				Difficulty:   difficulty,
				RestDuration: restSeconds,
			},
		},
	})
	return next, nil
}

func (e *Engine) updateSet(w Workout, setID string, update func(set *Set)) (Workout, error) {
	exIdx, setIdx, ok := w.FindSet(setID)
	if !ok {
		return w, ErrSetNotFound
	}
	next := w.Clone()
	update(&next.Exercises[exIdx].Sets[setIdx])
	return next, nil
}

func (e *Engine) finishOrRest(set *Set) {
	if set.RestDuration > 0 {
		now := e.now()
		set.Status = SetStatusResting
		set.RestStartedAt = &now
		set.RestEndedAt = nil
		return
	}
	e.finish(set)
}

func (e *Engine) finish(set *Set) {
	now := e.now()
	set.Status = SetStatusFinished
	if set.RestStartedAt != nil && now.Before(*set.RestStartedAt) {
		now = *set.RestStartedAt
	}
	set.RestEndedAt = &now
}

func unstart(set *Set) {
	set.Status = SetStatusUnstarted
	set.RestStartedAt = nil
	set.RestEndedAt = nil
}
