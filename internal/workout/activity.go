package workout

// ActivityType can be one of:
//   - exercising
//   - resting
//   - finished
type ActivityType string

const (
	ActivityExercising ActivityType = "exercising"
	ActivityResting    ActivityType = "resting"
	ActivityFinished   ActivityType = "finished"
)

// Activity is what the athlete should be doing right now. Always derived, never stored.
type Activity struct {
	Type     ActivityType `json:"type"`
	Exercise *Exercise    `json:"exercise,omitempty"`
	Set      *Set         `json:"set,omitempty"`
}

type Position struct {
	IsCurrent bool `json:"isCurrent"`
	IsBefore  bool `json:"isBefore"`
	IsAfter   bool `json:"isAfter"`
}

// Resolve returns the activity for the earliest non-finished set in the
// exercise/set sequence, or a finished activity when none is left.
func Resolve(w Workout) Activity {
	exIdx, setIdx, ok := currentIndex(w)
	if !ok {
		return Activity{Type: ActivityFinished}
	}

	exercise := w.Exercises[exIdx]
	set := exercise.Sets[setIdx]
	if set.Status == SetStatusResting {
		return Activity{
			Type:     ActivityResting,
			Exercise: &exercise,
			Set:      &set,
		}
	}
	return Activity{
		Type:     ActivityExercising,
		Exercise: &exercise,
		Set:      &set,
	}
}

// ResolvePosition compares the flattened index of setID with the current set.
// With no current set, every set is before it.
func ResolvePosition(w Workout, setID string) (Position, error) {
	target, ok := flatIndex(w, setID)
	if !ok {
		return Position{}, ErrSetNotFound
	}

	exIdx, setIdx, ok := currentIndex(w)
	if !ok {
		return Position{IsBefore: true}, nil
	}
	current, _ := flatIndex(w, w.Exercises[exIdx].Sets[setIdx].ID)

	return Position{
		IsCurrent: target == current,
		IsBefore:  target < current,
		IsAfter:   target > current,
	}, nil
}

func currentIndex(w Workout) (exIdx, setIdx int, ok bool) {
	for i, ex := range w.Exercises {
		for j, set := range ex.Sets {
			if set.Status != SetStatusFinished {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func flatIndex(w Workout, setID string) (int, bool) {
	idx := 0
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			if set.ID == setID {
				return idx, true
			}
			idx++
		}
	}
	return -1, false
}
