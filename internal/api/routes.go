package api

import (
	"net/http"

	"github.com/2beens/gymsession/pkg"

	"github.com/gorilla/mux"
)

// SetupRoutes registers the workout api. Routes that change state go through
// writeLimiter, which may be nil.
func (h *Handler) SetupRoutes(r *mux.Router, writeLimiter mux.MiddlewareFunc) {
	write := func(handlerFunc http.HandlerFunc) http.Handler {
		if writeLimiter == nil {
			return handlerFunc
		}
		return writeLimiter(handlerFunc)
	}

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET").Name("root")

	// live workout
	r.Handle("/live", write(h.HandleStart)).Methods("POST", "OPTIONS").Name("live-start")
	r.HandleFunc("/live", h.HandleGetLive).Methods("GET", "OPTIONS").Name("live-get")
	r.HandleFunc("/live/activity", h.HandleActivity).Methods("GET", "OPTIONS").Name("live-activity")
	r.Handle("/live/finish", write(h.HandleFinish)).Methods("POST", "OPTIONS").Name("live-finish")
	r.Handle("/live/exercises", write(h.HandleAddExercise)).Methods("POST", "OPTIONS").Name("live-add-exercise")
	r.Handle("/live/exercises/{id}/sets", write(h.HandleDuplicateSet)).Methods("POST", "OPTIONS").Name("live-duplicate-set")
	r.Handle("/live/exercises/{id}/note", write(h.HandleUpdateNote)).Methods("PUT", "OPTIONS").Name("live-update-note")
	r.Handle("/live/sets/{id}/toggle", write(h.HandleToggle)).Methods("POST", "OPTIONS").Name("live-toggle")
	r.Handle("/live/sets/{id}/complete", write(h.HandleComplete)).Methods("POST", "OPTIONS").Name("live-complete")
	r.Handle("/live/sets/{id}/finish", write(h.HandleFinishSet)).Methods("POST", "OPTIONS").Name("live-finish-set")
	r.Handle("/live/sets/{id}/unstart", write(h.HandleUnstart)).Methods("POST", "OPTIONS").Name("live-unstart")
	r.Handle("/live/sets/{id}/rest", write(h.HandleUpdateRest)).Methods("PUT", "OPTIONS").Name("live-update-rest")
	r.Handle("/live/sets/{id}/difficulty", write(h.HandleUpdateDifficulty)).Methods("PUT", "OPTIONS").Name("live-update-difficulty")
	r.Handle("/live/sets/{id}", write(h.HandleRemoveSet)).Methods("DELETE", "OPTIONS").Name("live-remove-set")

	// completed workouts
	r.HandleFunc("/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("workout-summary")
	r.Handle("/workouts/{id}", write(h.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.Handle("/workouts/{id}/sets/{setId}/toggle", write(h.HandleToggleCompleted)).Methods("POST", "OPTIONS").Name("toggle-completed")

	r.HandleFunc("/routines", h.HandleListRoutines).Methods("GET", "OPTIONS").Name("list-routines")
	r.Handle("/routines", write(h.HandleAddRoutine)).Methods("POST", "OPTIONS").Name("new-routine")

	r.HandleFunc("/catalog", h.HandleCatalog).Methods("GET", "OPTIONS").Name("catalog")
	r.HandleFunc("/history/{exercise}", h.HandleHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	r.HandleFunc("/transfer/export", h.HandleExport).Methods("GET", "OPTIONS").Name("export")
	r.Handle("/transfer/import", write(h.HandleImport)).Methods("POST", "OPTIONS").Name("import")
}
