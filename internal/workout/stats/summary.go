package stats

import (
	"time"

	"github.com/2beens/gymsession/internal/workout"
)

type Summary struct {
	TotalWeightLifted float64       `json:"totalWeightLifted"`
	TotalReps         int           `json:"totalReps"`
	TotalDuration     time.Duration `json:"totalDuration"`
}

// Summarize totals every set of the workout. TotalDuration is endedAt - startedAt,
// zero while the workout is live.
func Summarize(w workout.Workout) Summary {
	var summary Summary
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			weight, reps := setTotals(set.Difficulty)
			summary.TotalWeightLifted += weight
			summary.TotalReps += reps
		}
	}

	if w.EndedAt != nil {
		summary.TotalDuration = w.EndedAt.Sub(w.StartedAt)
		if summary.TotalDuration < 0 {
			summary.TotalDuration = 0
		}
	}

	return summary
}

func setTotals(d workout.Difficulty) (weight float64, reps int) {
	switch v := d.(type) {
	case workout.WeightDifficulty:
		return v.Weight * float64(v.Reps), v.Reps
	case workout.WeightedBodyweightDifficulty:
		return v.Weight * float64(v.Reps), v.Reps
	case workout.BodyweightDifficulty:
		return 0, v.Reps
	case workout.AssistedBodyweightDifficulty:
		return 0, v.Reps
	case workout.TimeDifficulty:
		return 0, 0
	default:
		return 0, 0
	}
}
