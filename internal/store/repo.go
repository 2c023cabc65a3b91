package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrRoutineNotFound = errors.New("routine not found")
)

type ListParams struct {
	From          *time.Time
	To            *time.Time
	OnlyCompleted bool
	// Size <= 0 lists everything
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetWorkout(ctx context.Context, id string) (_ *workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return nil, ErrWorkoutNotFound
	}

	var doc []byte
	err = r.db.
		QueryRow(ctx, `SELECT doc FROM workout WHERE id = $1`, id).
		Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	w := &workout.Workout{}
	if err := json.Unmarshal(doc, w); err != nil {
		return nil, fmt.Errorf("unmarshal workout [%s]: %w", id, err)
	}
	return w, nil
}

// SaveWorkout inserts or replaces the workout.
func (r *Repo) SaveWorkout(ctx context.Context, w workout.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", w.ID))

	doc, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal workout: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout (id, name, started_at, ended_at, doc, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    started_at = EXCLUDED.started_at,
		    ended_at = EXCLUDED.ended_at,
		    doc = EXCLUDED.doc,
		    updated_at = now()
	`,
		w.ID, w.Name, w.StartedAt, w.EndedAt, doc,
	)
	return err
}

func (r *Repo) DeleteWorkout(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return ErrWorkoutNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// CompletedWorkoutsBefore counts completed workouts started before ts.
func (r *Repo) CompletedWorkoutsBefore(ctx context.Context, ts time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.countcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout
		WHERE ended_at IS NOT NULL AND started_at < $1
	`, ts).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListWorkouts returns workouts ordered by start, most recent first.
func (r *Repo) ListWorkouts(ctx context.Context, params ListParams) (_ []workout.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Bool("only-completed", params.OnlyCompleted))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	var limit, offset any
	if params.Size > 0 {
		limit, offset = params.Size, params.Size*params.Page
	}

	rows, err := r.db.Query(ctx, `
		SELECT doc FROM workout
		WHERE ($1::timestamptz IS NULL OR started_at >= $1)
		  AND ($2::timestamptz IS NULL OR started_at <= $2)
		  AND ($3::boolean IS FALSE OR ended_at IS NOT NULL)
		ORDER BY started_at DESC
		LIMIT $4 OFFSET $5
	`,
		params.From, params.To, params.OnlyCompleted,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]workout.Workout, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var w workout.Workout
		if err := json.Unmarshal(doc, &w); err != nil {
			return nil, fmt.Errorf("unmarshal workout: %w", err)
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *Repo) ListCompletedWorkouts(ctx context.Context, params ListParams) ([]workout.Workout, error) {
	params.OnlyCompleted = true
	return r.ListWorkouts(ctx, params)
}

func (r *Repo) GetRoutine(ctx context.Context, id string) (_ *workout.Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return nil, ErrRoutineNotFound
	}

	var doc []byte
	err = r.db.QueryRow(ctx, `SELECT doc FROM routine WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}

	routine := &workout.Routine{}
	if err := json.Unmarshal(doc, routine); err != nil {
		return nil, fmt.Errorf("unmarshal routine [%s]: %w", id, err)
	}
	return routine, nil
}

func (r *Repo) SaveRoutine(ctx context.Context, routine workout.Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", routine.ID))

	doc, err := json.Marshal(routine)
	if err != nil {
		return fmt.Errorf("marshal routine: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO routine (id, name, doc, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    doc = EXCLUDED.doc,
		    updated_at = now()
	`, routine.ID, routine.Name, doc)
	return err
}

func (r *Repo) ListRoutines(ctx context.Context) (_ []workout.Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `SELECT doc FROM routine ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines := make([]workout.Routine, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var routine workout.Routine
		if err := json.Unmarshal(doc, &routine); err != nil {
			return nil, fmt.Errorf("unmarshal routine: %w", err)
		}
		routines = append(routines, routine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}
