package workout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSetNotFound        = errors.New("set not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrDifficultyMismatch = errors.New("difficulty does not match exercise type")
)

// SetStatus can be one of:
//   - unstarted
//   - resting
//   - finished
type SetStatus string

const (
	SetStatusUnstarted SetStatus = "unstarted"
	SetStatusResting   SetStatus = "resting"
	SetStatusFinished  SetStatus = "finished"
)

func (s SetStatus) String() string {
	return string(s)
}

func (s SetStatus) IsValid() bool {
	switch s {
	case SetStatusUnstarted,
		SetStatusResting,
		SetStatusFinished:
		return true
	default:
		return false
	}
}

// Workout is a live or completed training session.
// Exercise order defines the global activity sequence.
type Workout struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
	// RestDuration in seconds, applied to new sets
	RestDuration int   `json:"restDuration"`
	Sets         []Set `json:"sets"`
}

type Set struct {
	ID         string     `json:"id"`
	Status     SetStatus  `json:"status"`
	Difficulty Difficulty `json:"-"`
	// RestDuration in seconds, copied per set
	RestDuration  int        `json:"restDuration"`
	RestStartedAt *time.Time `json:"restStartedAt,omitempty"`
	RestEndedAt   *time.Time `json:"restEndedAt,omitempty"`
}

// Routine is a reusable template used to start new live workouts.
type Routine struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

func (w Workout) IsLive() bool {
	return w.EndedAt == nil
}

// Clone returns a deep copy, so the result can be modified without touching w.
func (w Workout) Clone() Workout {
	clone := w
	if w.EndedAt != nil {
		endedAt := *w.EndedAt
		clone.EndedAt = &endedAt
	}
	clone.Exercises = cloneExercises(w.Exercises)
	return clone
}

func (w Workout) FindSet(setID string) (exIdx, setIdx int, ok bool) {
	for i, ex := range w.Exercises {
		for j, set := range ex.Sets {
			if set.ID == setID {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func (w Workout) FindExercise(exerciseID string) (int, bool) {
	for i, ex := range w.Exercises {
		if ex.ID == exerciseID {
			return i, true
		}
	}
	return -1, false
}

func (w Workout) Set(setID string) (Set, bool) {
	exIdx, setIdx, ok := w.FindSet(setID)
	if !ok {
		return Set{}, false
	}
	return w.Exercises[exIdx].Sets[setIdx], true
}

func (r Routine) Clone() Routine {
	clone := r
	clone.Exercises = cloneExercises(r.Exercises)
	return clone
}

func cloneExercises(exercises []Exercise) []Exercise {
	if exercises == nil {
		return nil
	}
	cloned := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		cloned[i] = ex
		if ex.Sets != nil {
			cloned[i].Sets = make([]Set, len(ex.Sets))
			for j, set := range ex.Sets {
				cloned[i].Sets[j] = set.clone()
			}
		}
	}
	return cloned
}

func (s Set) clone() Set {
	if s.RestStartedAt != nil {
		t := *s.RestStartedAt
		s.RestStartedAt = &t
	}
	if s.RestEndedAt != nil {
		t := *s.RestEndedAt
		s.RestEndedAt = &t
	}
	return s
}

func (s Set) Rest() time.Duration {
	if s.RestDuration <= 0 {
		return 0
	}
	return time.Duration(s.RestDuration) * time.Second
}

// RestFinishAt is always derived from the absolute rest start, never from a countdown.
func (s Set) RestFinishAt() (time.Time, bool) {
	if s.Status != SetStatusResting || s.RestStartedAt == nil {
		return time.Time{}, false
	}
	return s.RestStartedAt.Add(s.Rest()), true
}

// RestTaken returns the actual rest span, clamped to zero on clock skew.
func (s Set) RestTaken() (time.Duration, bool) {
	if s.RestStartedAt == nil || s.RestEndedAt == nil {
		return 0, false
	}
	d := s.RestEndedAt.Sub(*s.RestStartedAt)
	if d < 0 {
		d = 0
	}
	return d, true
}

// Clock returns the current wall-clock time.
type Clock func() time.Time

// IDGenerator returns fresh unique ids.
type IDGenerator func() string

func NewUUID() string {
	return uuid.NewString()
}
