package workout

// Toggle applies a user tap on a set's completion control, respecting the
// position of the set relative to the current activity.
//
// live is false when there is no sequencing context, like editing a completed workout.
// The result is computed on a single copy, so no intermediate state is ever observable.
func (e *Engine) Toggle(w Workout, setID string, live bool) (Workout, error) {
	exIdx, setIdx, ok := w.FindSet(setID)
	if !ok {
		return w, ErrSetNotFound
	}
	status := w.Exercises[exIdx].Sets[setIdx].Status

	if !live && status == SetStatusFinished {
		return e.Unstart(w, setID)
	}

	position, err := ResolvePosition(w, setID)
	if err != nil {
		return w, err
	}

	switch {
	case position.IsCurrent:
		if status == SetStatusUnstarted {
			return e.FinishOrRest(w, setID)
		}
		return e.Unstart(w, setID)
	case position.IsAfter:
		if status == SetStatusUnstarted {
			return e.Finish(w, setID)
		}
		return e.Unstart(w, setID)
	default:
		// the set is before the current one, so it is finished. reverting it would make
		// it current again, and a still resting current set would be orphaned: close it first
		next := w.Clone()
		current := Resolve(w)
		if current.Type == ActivityResting {
			curExIdx, curSetIdx, _ := next.FindSet(current.Set.ID)
			e.finish(&next.Exercises[curExIdx].Sets[curSetIdx])
		}
		unstart(&next.Exercises[exIdx].Sets[setIdx])
		return next, nil
	}
}
