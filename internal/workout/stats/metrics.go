package stats

import (
	"math"

	"github.com/2beens/gymsession/internal/workout"
)

// MetricFunc maps a set's difficulty to a comparable scalar. ok is false when the
// difficulty does not belong to the metric's type.
type MetricFunc func(d workout.Difficulty) (value float64, ok bool)

type Metric struct {
	Name  string     `json:"name"`
	Unit  string     `json:"unit"`
	Value MetricFunc `json:"-"`
}

// MetricOptions returns the metrics available for a difficulty type. The first one
// is the topline metric, used for personal record detection.
func MetricOptions(dt workout.DifficultyType, bodyweight float64) []Metric {
	switch dt {
	case workout.DifficultyTypeWeight:
		return []Metric{
			{Name: "estimated_1rm", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.WeightDifficulty)
				return EstimateOneRepMax(v.Weight, v.Reps), ok
			}},
			{Name: "volume", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.WeightDifficulty)
				return v.Weight * float64(v.Reps), ok
			}},
			{Name: "max_weight", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.WeightDifficulty)
				return v.Weight, ok
			}},
		}
	case workout.DifficultyTypeWeightedBodyweight:
		return []Metric{
			{Name: "estimated_1rm", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.WeightedBodyweightDifficulty)
				return EstimateOneRepMax(bodyweight+v.Weight, v.Reps), ok
			}},
			{Name: "volume", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.WeightedBodyweightDifficulty)
				return v.Weight * float64(v.Reps), ok
			}},
			{Name: "max_weight", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.WeightedBodyweightDifficulty)
				return v.Weight, ok
			}},
		}
	case workout.DifficultyTypeAssistedBodyweight:
		return []Metric{
			{Name: "estimated_1rm", Unit: "kg", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.AssistedBodyweightDifficulty)
				return EstimateOneRepMax(math.Max(bodyweight-v.AssistanceWeight, 0), v.Reps), ok
			}},
			{Name: "max_reps", Unit: "reps", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.AssistedBodyweightDifficulty)
				return float64(v.Reps), ok
			}},
		}
	case workout.DifficultyTypeBodyweight:
		return []Metric{
			{Name: "max_reps", Unit: "reps", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.BodyweightDifficulty)
				return float64(v.Reps), ok
			}},
		}
	case workout.DifficultyTypeTime:
		return []Metric{
			{Name: "max_duration", Unit: "s", Value: func(d workout.Difficulty) (float64, bool) {
				v, ok := d.(workout.TimeDifficulty)
				return float64(v.Duration), ok
			}},
		}
	default:
		return nil
	}
}

// Topline returns the topline metric for dt, ok is false for unknown types.
func Topline(dt workout.DifficultyType, bodyweight float64) (Metric, bool) {
	options := MetricOptions(dt, bodyweight)
	if len(options) == 0 {
		return Metric{}, false
	}
	return options[0], true
}

// EstimateOneRepMax uses Brzycki up to 10 reps, where it is most accurate, and Epley above.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	if reps <= 10 {
		return round2(weight * (36.0 / float64(37-reps)))
	}
	return round2(weight * (1 + 0.0333*float64(reps)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
