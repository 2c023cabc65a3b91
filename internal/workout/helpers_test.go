package workout_test

import (
	"fmt"
	"time"

	"github.com/2beens/gymsession/internal/workout"
)

var testStart = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: testStart}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func sequentialIDs(prefix string) workout.IDGenerator {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("%s-%d", prefix, i)
	}
}

// twoByTwo returns a workout with two exercises of two unstarted sets each:
// e1/s1, e1/s2, e2/s1, e2/s2
func twoByTwo(restSeconds int) workout.Workout {
	newSet := func(id string) workout.Set {
		return workout.Set{
			ID:           id,
			Status:       workout.SetStatusUnstarted,
			Difficulty:   workout.WeightDifficulty{Weight: 135, Reps: 5},
			RestDuration: restSeconds,
		}
	}
	return workout.Workout{
		ID:        "w1",
		Name:      "push day",
		StartedAt: testStart,
		Exercises: []workout.Exercise{
			{
				ID:           "e1",
				Name:         "Bench Press",
				RestDuration: restSeconds,
				Sets:         []workout.Set{newSet("e1s1"), newSet("e1s2")},
			},
			{
				ID:           "e2",
				Name:         "Overhead Press",
				RestDuration: restSeconds,
				Sets:         []workout.Set{newSet("e2s1"), newSet("e2s2")},
			},
		},
	}
}

func mustSet(w workout.Workout, id string) workout.Set {
	set, ok := w.Set(id)
	if !ok {
		panic("set not found: " + id)
	}
	return set
}
