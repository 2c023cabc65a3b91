package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymsession/internal/catalog"
	"github.com/2beens/gymsession/internal/history"
	"github.com/2beens/gymsession/internal/session"
	"github.com/2beens/gymsession/internal/store"
	"github.com/2beens/gymsession/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=api_test
type liveSession interface {
	Start(ctx context.Context, params session.StartParams) (workout.Workout, error)
	Workout() (workout.Workout, bool)
	Activity() (workout.Activity, error)
	Toggle(ctx context.Context, setID string) (workout.Workout, error)
	FinishOrRest(ctx context.Context, setID string) (workout.Workout, error)
	FinishSet(ctx context.Context, setID string) (workout.Workout, error)
	Unstart(ctx context.Context, setID string) (workout.Workout, error)
	UpdateRestDuration(ctx context.Context, setID string, seconds int) (workout.Workout, error)
	UpdateDifficulty(ctx context.Context, setID string, d workout.Difficulty) (workout.Workout, error)
	RemoveSet(ctx context.Context, setID string) (workout.Workout, error)
	DuplicateLastSet(ctx context.Context, exerciseID string) (workout.Workout, error)
	UpdateNote(ctx context.Context, exerciseID, note string) (workout.Workout, error)
	AddExercise(ctx context.Context, name string, restSeconds int) (workout.Workout, error)
	Finish(ctx context.Context, wrapUp bool) (workout.Workout, error)
	ToggleCompleted(ctx context.Context, workoutID, setID string) (workout.Workout, error)
}

type workoutsRepo interface {
	GetWorkout(ctx context.Context, id string) (*workout.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	ListWorkouts(ctx context.Context, params store.ListParams) ([]workout.Workout, error)
	CompletedWorkoutsBefore(ctx context.Context, ts time.Time) (int, error)
	ListRoutines(ctx context.Context) ([]workout.Routine, error)
	SaveRoutine(ctx context.Context, routine workout.Routine) error
}

type historyService interface {
	ExerciseHistory(ctx context.Context, name string, bodyweight float64) (*history.ExerciseHistory, error)
	Invalidate()
}

type exerciseCatalog interface {
	Entries() []catalog.Entry
}

type documentTransfer interface {
	Export(ctx context.Context) (*store.Document, error)
	Import(ctx context.Context, doc store.Document) (store.ImportResult, error)
}

type NewHandlerParams struct {
	Session           liveSession
	Repo              workoutsRepo
	History           historyService
	Catalog           exerciseCatalog
	Transfer          documentTransfer
	DefaultBodyweight float64
	NewID             workout.IDGenerator
}

type Handler struct {
	session           liveSession
	repo              workoutsRepo
	history           historyService
	catalog           exerciseCatalog
	transfer          documentTransfer
	defaultBodyweight float64
	newID             workout.IDGenerator
}

func NewHandler(params NewHandlerParams) *Handler {
	newID := params.NewID
	if newID == nil {
		newID = workout.NewUUID
	}
	return &Handler{
		session:           params.Session,
		repo:              params.Repo,
		history:           params.History,
		catalog:           params.Catalog,
		transfer:          params.Transfer,
		defaultBodyweight: params.DefaultBodyweight,
		newID:             newID,
	}
}

// errorStatus maps domain errors to http status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNoLiveWorkout),
		errors.Is(err, store.ErrWorkoutNotFound),
		errors.Is(err, store.ErrRoutineNotFound),
		errors.Is(err, workout.ErrSetNotFound),
		errors.Is(err, workout.ErrExerciseNotFound),
		errors.Is(err, catalog.ErrExerciseNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrWorkoutAlreadyLive),
		errors.Is(err, session.ErrUnfinishedSets),
		errors.Is(err, session.ErrWorkoutIsLive):
		return http.StatusConflict
	case errors.Is(err, workout.ErrDifficultyMismatch),
		errors.Is(err, session.ErrInvalidStart),
		errors.Is(err, store.ErrUnsupportedVersion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error, msg string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, status)
		return
	}
	http.Error(w, msg+": "+err.Error(), status)
}

func decodeJSON(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return errors.New("invalid content type")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func splitErrors(err error) []string {
	errs := multierr.Errors(err)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
