package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/gymsession/internal/session"
	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/internal/workout/stats"
	"github.com/2beens/gymsession/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type UpdateRestRequest struct {
	Seconds int `json:"seconds"`
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

type AddExerciseRequest struct {
	Name         string `json:"name"`
	RestDuration int    `json:"restDuration"`
}

type LiveWorkoutResponse struct {
	Workout  workout.Workout  `json:"workout"`
	Activity workout.Activity `json:"activity"`
	Summary  stats.Summary    `json:"summary"`
}

func liveResponse(w workout.Workout) LiveWorkoutResponse {
	return LiveWorkoutResponse{
		Workout:  w,
		Activity: workout.Resolve(w),
		Summary:  stats.Summarize(w),
	}
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.live.start")
	defer span.End()

	var params session.StartParams
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &params); err != nil {
			log.Errorf("start workout, unmarshal json params: %s", err)
			http.Error(w, "invalid start params", http.StatusBadRequest)
			return
		}
	}
	if params.Bodyweight <= 0 {
		params.Bodyweight = h.defaultBodyweight
	}

	started, err := h.session.Start(ctx, params)
	if err != nil {
		writeError(w, err, "start workout")
		return
	}

	log.Debugf("workout [%s] started", started.ID)
	pkg.WriteJSON(w, liveResponse(started), http.StatusCreated)
}

func (h *Handler) HandleGetLive(w http.ResponseWriter, _ *http.Request) {
	live, ok := h.session.Workout()
	if !ok {
		writeError(w, session.ErrNoLiveWorkout, "get live workout")
		return
	}
	pkg.WriteJSON(w, liveResponse(live), http.StatusOK)
}

func (h *Handler) HandleActivity(w http.ResponseWriter, _ *http.Request) {
	activity, err := h.session.Activity()
	if err != nil {
		writeError(w, err, "get activity")
		return
	}
	pkg.WriteJSON(w, activity, http.StatusOK)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.live.finish")
	defer span.End()

	wrapUp := false
	if wrapUpStr := r.URL.Query().Get("wrapup"); wrapUpStr != "" {
		var err error
		if wrapUp, err = strconv.ParseBool(wrapUpStr); err != nil {
			http.Error(w, "error, wrapup not a bool", http.StatusBadRequest)
			return
		}
	}
	span.SetAttributes(attribute.Bool("wrapup", wrapUp))

	finished, err := h.session.Finish(ctx, wrapUp)
	if err != nil {
		writeError(w, err, "finish workout")
		return
	}

	pkg.WriteJSON(w, liveResponse(finished), http.StatusOK)
}

// setAction adapts a live session set operation into a handler.
func (h *Handler) setAction(
	spanName string,
	action func(ctx context.Context, setID string) (workout.Workout, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
		defer span.End()

		setID := mux.Vars(r)["id"]
		if setID == "" {
			http.Error(w, "error, set id empty", http.StatusBadRequest)
			return
		}
		span.SetAttributes(attribute.String("set", setID))

		updated, err := action(ctx, setID)
		if err != nil {
			writeError(w, err, "update set")
			return
		}
		pkg.WriteJSON(w, liveResponse(updated), http.StatusOK)
	}
}

func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	h.setAction("handler.live.toggle", h.session.Toggle)(w, r)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.setAction("handler.live.complete", h.session.FinishOrRest)(w, r)
}

func (h *Handler) HandleFinishSet(w http.ResponseWriter, r *http.Request) {
	h.setAction("handler.live.finishset", h.session.FinishSet)(w, r)
}

func (h *Handler) HandleUnstart(w http.ResponseWriter, r *http.Request) {
	h.setAction("handler.live.unstart", h.session.Unstart)(w, r)
}

func (h *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	h.setAction("handler.live.removeset", h.session.RemoveSet)(w, r)
}

func (h *Handler) HandleUpdateRest(w http.ResponseWriter, r *http.Request) {
	var req UpdateRestRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid rest params", http.StatusBadRequest)
		return
	}
	h.setAction("handler.live.updaterest", func(ctx context.Context, setID string) (workout.Workout, error) {
		return h.session.UpdateRestDuration(ctx, setID, req.Seconds)
	})(w, r)
}

func (h *Handler) HandleUpdateDifficulty(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		http.Error(w, "invalid difficulty", http.StatusBadRequest)
		return
	}
	d, err := workout.UnmarshalDifficulty(raw)
	if err != nil || d == nil {
		http.Error(w, "invalid difficulty", http.StatusBadRequest)
		return
	}
	h.setAction("handler.live.updatedifficulty", func(ctx context.Context, setID string) (workout.Workout, error) {
		return h.session.UpdateDifficulty(ctx, setID, d)
	})(w, r)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.live.addexercise")
	defer span.End()

	var req AddExerciseRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		http.Error(w, "invalid exercise params", http.StatusBadRequest)
		return
	}

	updated, err := h.session.AddExercise(ctx, req.Name, req.RestDuration)
	if err != nil {
		writeError(w, err, "add exercise")
		return
	}
	pkg.WriteJSON(w, liveResponse(updated), http.StatusCreated)
}

func (h *Handler) HandleDuplicateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.live.duplicateset")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	updated, err := h.session.DuplicateLastSet(ctx, exerciseID)
	if err != nil {
		writeError(w, err, "duplicate set")
		return
	}
	pkg.WriteJSON(w, liveResponse(updated), http.StatusCreated)
}

func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.live.updatenote")
	defer span.End()

	var req UpdateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid note params", http.StatusBadRequest)
		return
	}

	updated, err := h.session.UpdateNote(ctx, mux.Vars(r)["id"], req.Note)
	if err != nil {
		writeError(w, err, "update note")
		return
	}
	pkg.WriteJSON(w, liveResponse(updated), http.StatusOK)
}
