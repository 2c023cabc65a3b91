package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const DocumentVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported document version")

// Document is the portable export of all workouts and routines.
type Document struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Workouts   []workout.Workout `json:"workouts"`
	Routines   []workout.Routine `json:"routines"`
}

type ImportResult struct {
	Workouts int `json:"workouts"`
	Routines int `json:"routines"`
}

//go:generate mockgen -source=$GOFILE -destination=interchange_mocks_test.go -package=store_test
type documentStore interface {
	ListWorkouts(ctx context.Context, params ListParams) ([]workout.Workout, error)
	ListRoutines(ctx context.Context) ([]workout.Routine, error)
	SaveWorkout(ctx context.Context, w workout.Workout) error
	SaveRoutine(ctx context.Context, routine workout.Routine) error
}

type Transfer struct {
	store documentStore
	now   workout.Clock
	newID workout.IDGenerator
}

func NewTransfer(store documentStore, now workout.Clock, newID workout.IDGenerator) *Transfer {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = workout.NewUUID
	}
	return &Transfer{
		store: store,
		now:   now,
		newID: newID,
	}
}

func (t *Transfer) Export(ctx context.Context) (_ *Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "transfer.export")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workouts, err := t.store.ListWorkouts(ctx, ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	routines, err := t.store.ListRoutines(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	return &Document{
		Version:    DocumentVersion,
		ExportedAt: t.now(),
		Workouts:   workouts,
		Routines:   routines,
	}, nil
}

// Import saves every item of doc under fresh ids. Failing items are skipped and
// reported together in the returned error; the rest are still imported.
func (t *Transfer) Import(ctx context.Context, doc Document) (_ ImportResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "transfer.import")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if doc.Version != DocumentVersion {
		return ImportResult{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	var result ImportResult
	for i, w := range doc.Workouts {
		if validateErr := validateWorkout(w); validateErr != nil {
			err = multierr.Append(err, fmt.Errorf("workout #%d [%s]: %w", i, w.Name, validateErr))
			continue
		}
		if saveErr := t.store.SaveWorkout(ctx, t.regenerateWorkoutIDs(w)); saveErr != nil {
			err = multierr.Append(err, fmt.Errorf("save workout #%d [%s]: %w", i, w.Name, saveErr))
			continue
		}
		result.Workouts++
	}

	for i, r := range doc.Routines {
		if validateErr := validateRoutine(r); validateErr != nil {
			err = multierr.Append(err, fmt.Errorf("routine #%d [%s]: %w", i, r.Name, validateErr))
			continue
		}
		if saveErr := t.store.SaveRoutine(ctx, t.regenerateRoutineIDs(r)); saveErr != nil {
			err = multierr.Append(err, fmt.Errorf("save routine #%d [%s]: %w", i, r.Name, saveErr))
			continue
		}
		result.Routines++
	}

	log.Debugf("transfer: imported %d workouts, %d routines", result.Workouts, result.Routines)
	return result, err
}

func (t *Transfer) regenerateWorkoutIDs(w workout.Workout) workout.Workout {
	w = w.Clone()
	w.ID = t.newID()
	t.regenerateExerciseIDs(w.Exercises)
	return w
}

// regenerateRoutineIDs also resets every set, a routine is only a template.
func (t *Transfer) regenerateRoutineIDs(r workout.Routine) workout.Routine {
	r = r.Clone()
	r.ID = t.newID()
	t.regenerateExerciseIDs(r.Exercises)
	for i := range r.Exercises {
		for j := range r.Exercises[i].Sets {
			set := &r.Exercises[i].Sets[j]
			set.Status = workout.SetStatusUnstarted
			set.RestStartedAt = nil
			set.RestEndedAt = nil
		}
	}
	return r
}

func (t *Transfer) regenerateExerciseIDs(exercises []workout.Exercise) {
	for i := range exercises {
		exercises[i].ID = t.newID()
		for j := range exercises[i].Sets {
			exercises[i].Sets[j].ID = t.newID()
		}
	}
}

func validateWorkout(w workout.Workout) error {
	if w.StartedAt.IsZero() {
		return errors.New("missing start time")
	}
	return validateExercises(w.Exercises)
}

func validateRoutine(r workout.Routine) error {
	if r.Name == "" {
		return errors.New("missing name")
	}
	return validateExercises(r.Exercises)
}

func validateExercises(exercises []workout.Exercise) error {
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if !set.Status.IsValid() {
				return fmt.Errorf("set [%s]: invalid status [%s]", set.ID, set.Status)
			}
			if set.Difficulty == nil {
				return fmt.Errorf("set [%s]: missing difficulty", set.ID)
			}
		}
	}
	return nil
}

func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
