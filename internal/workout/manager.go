package workout

import (
	"time"
)

// Manager runs the start/finish/repeat workflows. It performs no I/O, every
// result is a new Workout handed to the caller for persisting.
type Manager struct {
	now   Clock
	newID IDGenerator
}

func NewManager(now Clock, newID IDGenerator) *Manager {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = NewUUID
	}
	return &Manager{
		now:   now,
		newID: newID,
	}
}

func (m *Manager) CreateEmpty(name string) Workout {
	return Workout{
		ID:        m.newID(),
		Name:      name,
		StartedAt: m.now(),
		Exercises: []Exercise{},
	}
}

// CreateFromRoutine starts a new live workout from a routine template.
func (m *Manager) CreateFromRoutine(routine Routine, bodyweight float64) Workout {
	return Workout{
		ID:        m.newID(),
		Name:      routine.Name,
		StartedAt: m.now(),
		Exercises: m.resetExercises(routine.Exercises, bodyweight),
	}
}

// CreateFromWorkout repeats a past workout.
func (m *Manager) CreateFromWorkout(past Workout, bodyweight float64) Workout {
	return Workout{
		ID:        m.newID(),
		Name:      past.Name,
		StartedAt: m.now(),
		Exercises: m.resetExercises(past.Exercises, bodyweight),
	}
}

// WrapUpSets forces every non-finished set to finished, discarding pending rest.
// It does not end the workout.
func (m *Manager) WrapUpSets(w Workout) Workout {
	next := w.Clone()
	now := m.now()
	for i := range next.Exercises {
		for j := range next.Exercises[i].Sets {
			set := &next.Exercises[i].Sets[j]
			if set.Status == SetStatusFinished {
				continue
			}
			endedAt := now
			if set.RestStartedAt != nil && endedAt.Before(*set.RestStartedAt) {
				endedAt = *set.RestStartedAt
			}
			set.Status = SetStatusFinished
			set.RestEndedAt = &endedAt
		}
	}
	return next
}

// Finish ends the workout. Callers wrap up unfinished sets first, after the user
// confirmed discarding them.
func (m *Manager) Finish(w Workout) Workout {
	next := w.Clone()
	endedAt := m.now()
	if endedAt.Before(next.StartedAt) {
		endedAt = next.StartedAt
	}
	next.EndedAt = &endedAt
	return next
}

func HasUnfinishedSets(w Workout) bool {
	return Resolve(w).Type != ActivityFinished
}

func (m *Manager) resetExercises(exercises []Exercise, bodyweight float64) []Exercise {
	reset := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		newEx := Exercise{
			ID:           m.newID(),
			Name:         ex.Name,
			Note:         ex.Note,
			RestDuration: ex.RestDuration,
			Sets:         make([]Set, 0, len(ex.Sets)),
		}
		for _, set := range ex.Sets {
			newEx.Sets = append(newEx.Sets, Set{
				ID:           m.newID(),
				Status:       SetStatusUnstarted,
				Difficulty:   withBodyweight(set.Difficulty, bodyweight),
				RestDuration: set.RestDuration,
			})
		}
		reset = append(reset, newEx)
	}
	return reset
}

// withBodyweight caps assistance at the athlete's current bodyweight.
func withBodyweight(d Difficulty, bodyweight float64) Difficulty {
	switch v := d.(type) {
	case AssistedBodyweightDifficulty:
		if v.AssistanceWeight > bodyweight && bodyweight > 0 {
			v.AssistanceWeight = bodyweight
		}
		return v
	default:
		return d
	}
}
