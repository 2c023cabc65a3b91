package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymsession/internal/workout"
)

// Completion is one completed instance of an exercise, within the workout that started at StartedAt.
type Completion struct {
	WorkoutID string           `json:"workoutId"`
	StartedAt time.Time        `json:"startedAt"`
	Exercise  workout.Exercise `json:"exercise"`
}

// SetSummary groups the sets of a day that share the same difficulty.
type SetSummary struct {
	Key      string        `json:"key"`
	Count    int           `json:"count"`
	Weight   *float64      `json:"weight,omitempty"`
	Reps     *int          `json:"reps,omitempty"`
	Duration *int          `json:"duration,omitempty"`
	AvgRest  time.Duration `json:"avgRest"`
}

type HistoryDay struct {
	Day       time.Time    `json:"day"`
	Notes     []string     `json:"notes"`
	Summaries []SetSummary `json:"summaries"`
	HasPR     bool         `json:"hasPR"`
	PRSetID   string       `json:"prSetId,omitempty"`
}

type historyDay struct {
	HistoryDay
	sets       []workout.Set
	summaryIdx map[string]int
	rests      map[string][]time.Duration
}

// ComputeHistory groups completions by calendar day, returning days in descending order.
// Only finished sets of the given difficulty type count. A day is flagged as a personal
// record when its best set strictly beats every earlier day; the first day only seeds
// the running maximum.
func ComputeHistory(completions []Completion, dt workout.DifficultyType, topline MetricFunc) []HistoryDay {
	sorted := make([]Completion, len(completions))
	copy(sorted, completions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})

	var days []*historyDay
	day2history := make(map[dayKey]*historyDay)
	for _, c := range sorted {
		day := calendarDay(c.StartedAt)
		hd, ok := day2history[keyOf(day)]
		if !ok {
			hd = &historyDay{
				HistoryDay: HistoryDay{
					Day:       day,
					Notes:     []string{},
					Summaries: []SetSummary{},
				},
				summaryIdx: make(map[string]int),
				rests:      make(map[string][]time.Duration),
			}
			day2history[keyOf(day)] = hd
			days = append(days, hd)
		}
		hd.add(c.Exercise, dt)
	}

	history := make([]HistoryDay, 0, len(days))
	for _, hd := range days {
		if len(hd.sets) == 0 {
			continue
		}
		hd.finalize()
		history = append(history, hd.HistoryDay)
	}

	// ascending scan, so flags do not depend on later days
	markPersonalRecords(history, days, topline)

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Day.After(history[j].Day)
	})

	return history
}

func markPersonalRecords(history []HistoryDay, days []*historyDay, topline MetricFunc) {
	if topline == nil {
		return
	}

	day2sets := make(map[dayKey][]workout.Set, len(days))
	for _, hd := range days {
		day2sets[keyOf(hd.Day)] = hd.sets
	}

	seeded := false
	var runningMax float64
	for i := range history {
		bestSetID, best, ok := bestSet(day2sets[keyOf(history[i].Day)], topline)
		if !ok {
			continue
		}
		if !seeded {
			seeded = true
			runningMax = best
			continue
		}
		if best > runningMax {
			history[i].HasPR = true
			history[i].PRSetID = bestSetID
			runningMax = best
		}
	}
}

func bestSet(sets []workout.Set, topline MetricFunc) (string, float64, bool) {
	var (
		bestID string
		best   float64
		found  bool
	)
	for _, set := range sets {
		value, ok := topline(set.Difficulty)
		if !ok {
			continue
		}
		if !found || value > best {
			bestID, best, found = set.ID, value, true
		}
	}
	return bestID, best, found
}

func (hd *historyDay) add(ex workout.Exercise, dt workout.DifficultyType) {
	if note := strings.TrimSpace(ex.Note); note != "" {
		hd.Notes = append(hd.Notes, note)
	}

	for _, set := range ex.Sets {
		if set.Status != workout.SetStatusFinished || set.Difficulty == nil || set.Difficulty.Type() != dt {
			continue
		}

		summary, ok := newSetSummary(set.Difficulty)
		if !ok {
			continue
		}
		hd.sets = append(hd.sets, set)

		idx, ok := hd.summaryIdx[summary.Key]
		if !ok {
			idx = len(hd.Summaries)
			hd.summaryIdx[summary.Key] = idx
			hd.Summaries = append(hd.Summaries, summary)
		}
		hd.Summaries[idx].Count++

		if rest, ok := set.RestTaken(); ok {
			hd.rests[summary.Key] = append(hd.rests[summary.Key], rest)
		}
	}
}

func (hd *historyDay) finalize() {
	for i := range hd.Summaries {
		rests := hd.rests[hd.Summaries[i].Key]
		if len(rests) == 0 {
			continue
		}
		var total time.Duration
		for _, r := range rests {
			total += r
		}
		hd.Summaries[i].AvgRest = total / time.Duration(len(rests))
	}
}

// newSetSummary builds the identity key from the non-null fields of the difficulty.
func newSetSummary(d workout.Difficulty) (SetSummary, bool) {
	switch v := d.(type) {
	case workout.WeightDifficulty:
		weight, reps := v.Weight, v.Reps
		return SetSummary{Key: fmt.Sprintf("w:%g|r:%d", weight, reps), Weight: &weight, Reps: &reps}, true
	case workout.WeightedBodyweightDifficulty:
		weight, reps := v.Weight, v.Reps
		return SetSummary{Key: fmt.Sprintf("w:%g|r:%d", weight, reps), Weight: &weight, Reps: &reps}, true
	case workout.AssistedBodyweightDifficulty:
		weight, reps := v.AssistanceWeight, v.Reps
		return SetSummary{Key: fmt.Sprintf("a:%g|r:%d", weight, reps), Weight: &weight, Reps: &reps}, true
	case workout.BodyweightDifficulty:
		reps := v.Reps
		return SetSummary{Key: fmt.Sprintf("r:%d", reps), Reps: &reps}, true
	case workout.TimeDifficulty:
		duration := v.Duration
		return SetSummary{Key: fmt.Sprintf("d:%d", duration), Duration: &duration}, true
	default:
		return SetSummary{}, false
	}
}

// dayKey identifies a calendar day. time.Time is no map key for that, its equality
// includes the *Location, and decoded non whole-hour offsets each get their own zone.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CompletionsOf extracts every instance of the named exercise from completed workouts.
func CompletionsOf(workouts []workout.Workout, exerciseName string) []Completion {
	var completions []Completion
	for _, w := range workouts {
		if w.IsLive() {
			continue
		}
		for _, ex := range w.Exercises {
			if !strings.EqualFold(ex.Name, exerciseName) {
				continue
			}
			completions = append(completions, Completion{
				WorkoutID: w.ID,
				StartedAt: w.StartedAt,
				Exercise:  ex,
			})
		}
	}
	return completions
}
