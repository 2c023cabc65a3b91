package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymsession/internal/store"
	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/internal/workout/stats"
	"github.com/2beens/gymsession/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type WorkoutsListResponse struct {
	Workouts []workout.Workout `json:"workouts"`
}

// WorkoutSummaryResponse numbers a completed workout among all completed ones, oldest first.
type WorkoutSummaryResponse struct {
	stats.Summary
	WorkoutNumber int `json:"workoutNumber,omitempty"`
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workouts, err := h.repo.ListWorkouts(ctx, params)
	if err != nil {
		writeError(w, err, "list workouts")
		return
	}

	pkg.WriteJSON(w, WorkoutsListResponse{Workouts: workouts}, http.StatusOK)
}

func listParamsFromQuery(r *http.Request) (store.ListParams, error) {
	query := r.URL.Query()
	var params store.ListParams

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return params, errInvalidParam("page")
		}
		params.Page = page
	}
	if sizeStr := query.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 0 {
			return params, errInvalidParam("size")
		}
		params.Size = size
	}
	if completedStr := query.Get("completed"); completedStr != "" {
		completed, err := strconv.ParseBool(completedStr)
		if err != nil {
			return params, errInvalidParam("completed")
		}
		params.OnlyCompleted = completed
	}
	for key, target := range map[string]**time.Time{"from": &params.From, "to": &params.To} {
		if tStr := query.Get(key); tStr != "" {
			t, err := time.Parse(time.RFC3339, tStr)
			if err != nil {
				return params, errInvalidParam(key)
			}
			*target = &t
		}
	}

	return params, nil
}

type errInvalidParam string

func (e errInvalidParam) Error() string {
	return "error, invalid param: " + string(e)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("id", id))

	wo, err := h.repo.GetWorkout(ctx, id)
	if err != nil {
		writeError(w, err, "get workout")
		return
	}
	pkg.WriteJSON(w, wo, http.StatusOK)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.summary")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("id", id))

	wo, err := h.repo.GetWorkout(ctx, id)
	if err != nil {
		writeError(w, err, "get workout")
		return
	}
	resp := WorkoutSummaryResponse{Summary: stats.Summarize(*wo)}
	if !wo.IsLive() {
		before, err := h.repo.CompletedWorkoutsBefore(ctx, wo.StartedAt)
		if err != nil {
			writeError(w, err, "count workouts")
			return
		}
		resp.WorkoutNumber = before + 1
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("id", id))

	if live, ok := h.session.Workout(); ok && live.ID == id {
		http.Error(w, "error, workout is live, finish it first", http.StatusConflict)
		return
	}

	if err := h.repo.DeleteWorkout(ctx, id); err != nil {
		writeError(w, err, "delete workout")
		return
	}
	h.history.Invalidate()

	log.Debugf("workout [%s] deleted", id)
	pkg.WriteJSON(w, DeleteWorkoutResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleToggleCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.toggle")
	defer span.End()

	vars := mux.Vars(r)
	updated, err := h.session.ToggleCompleted(ctx, vars["id"], vars["setId"])
	if err != nil {
		writeError(w, err, "toggle set")
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleListRoutines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	routines, err := h.repo.ListRoutines(ctx)
	if err != nil {
		writeError(w, err, "list routines")
		return
	}
	pkg.WriteJSON(w, routines, http.StatusOK)
}

// HandleAddRoutine stores a routine template. Ids are always assigned here and
// every set starts unstarted.
func (h *Handler) HandleAddRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add")
	defer span.End()

	var routine workout.Routine
	if err := decodeJSON(r, &routine); err != nil || routine.Name == "" {
		http.Error(w, "invalid routine", http.StatusBadRequest)
		return
	}

	routine.ID = h.newID()
	for i := range routine.Exercises {
		ex := &routine.Exercises[i]
		ex.ID = h.newID()
		for j := range ex.Sets {
			set := &ex.Sets[j]
			set.ID = h.newID()
			set.Status = workout.SetStatusUnstarted
			set.RestStartedAt = nil
			set.RestEndedAt = nil
		}
	}

	if err := h.repo.SaveRoutine(ctx, routine); err != nil {
		writeError(w, err, "save routine")
		return
	}
	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, h.catalog.Entries(), http.StatusOK)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history")
	defer span.End()

	exercise := mux.Vars(r)["exercise"]
	bodyweight := h.defaultBodyweight
	if bwStr := r.URL.Query().Get("bodyweight"); bwStr != "" {
		bw, err := strconv.ParseFloat(bwStr, 64)
		if err != nil || bw < 0 {
			http.Error(w, "error, invalid param: bodyweight", http.StatusBadRequest)
			return
		}
		bodyweight = bw
	}

	exerciseHistory, err := h.history.ExerciseHistory(ctx, exercise, bodyweight)
	if err != nil {
		writeError(w, err, "exercise history")
		return
	}
	pkg.WriteJSON(w, exerciseHistory, http.StatusOK)
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.transfer.export")
	defer span.End()

	doc, err := h.transfer.Export(ctx)
	if err != nil {
		writeError(w, err, "export")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="gymsession-export.json"`)
	w.Header().Set("Content-Type", pkg.ContentType.JSON)
	if err := store.WriteDocument(w, *doc); err != nil {
		log.Errorf("write export document: %s", err)
	}
}

type ImportResponse struct {
	store.ImportResult
	Errors []string `json:"errors,omitempty"`
}

func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.transfer.import")
	defer span.End()

	doc, err := store.ReadDocument(r.Body)
	if err != nil {
		http.Error(w, "invalid document: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.transfer.Import(ctx, doc)
	if err != nil && result.Workouts == 0 && result.Routines == 0 && errorStatus(err) != http.StatusInternalServerError {
		writeError(w, err, "import")
		return
	}

	resp := ImportResponse{ImportResult: result}
	if err != nil {
		resp.Errors = splitErrors(err)
	}
	h.history.Invalidate()

	pkg.WriteJSON(w, resp, http.StatusOK)
}
