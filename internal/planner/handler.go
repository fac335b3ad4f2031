package planner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=planner_mocks_test.go -package=planner_test

type logExercisesAdder interface {
	AddExercises(ctx context.Context, userID, date string, refs []workouts.ExerciseRef) (*workouts.WorkoutLog, int, error)
}

type AddPlanResponse struct {
	Log   *workouts.WorkoutLog `json:"log"`
	Added int                  `json:"added"`
}

type Handler struct {
	store Store
	logs  logExercisesAdder
}

func NewHandler(store Store, logs logExercisesAdder) *Handler {
	return &Handler{
		store: store,
		logs:  logs,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/planner", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	router.HandleFunc("/planner", handler.HandleReplace).Methods("PUT", "OPTIONS").Name("replace-plan")
	router.HandleFunc("/logs/date/{date}/plan", handler.HandleAddToLog).Methods("POST", "OPTIONS").Name("add-plan-to-log")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	plan, err := handler.store.GetPlan(ctx, userID)
	if err != nil {
		log.Errorf("failed to get plan for %s: %s", userID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.replace")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var plan WeeklyPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("replace plan, unmarshal json: %s", err)
		http.Error(w, "invalid plan", http.StatusBadRequest)
		return
	}

	normalized, err := plan.Normalize()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.SavePlan(ctx, userID, normalized); err != nil {
		log.Errorf("failed to save plan for %s: %s", userID, err)
		http.Error(w, "failed to save plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, normalized, http.StatusOK)
}

// HandleAddToLog puts the exercises planned for the date's weekday into that
// day's log. Exercises already logged that day are skipped.
func (handler *Handler) HandleAddToLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.add-to-log")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	date := mux.Vars(r)["date"]
	day, err := workouts.ParseDate(date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	weekday := Weekday(day)
	span.SetAttributes(attribute.String("weekday", weekday))

	plan, err := handler.store.GetPlan(ctx, userID)
	if err != nil {
		log.Errorf("failed to get plan for %s: %s", userID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	planned := plan.ForDay(weekday)
	refs := make([]workouts.ExerciseRef, 0, len(planned))
	for _, p := range planned {
		refs = append(refs, workouts.ExerciseRef{
			ExerciseID:   p.ExerciseID,
			ExerciseName: p.ExerciseName,
		})
	}

	updatedLog, added, err := handler.logs.AddExercises(ctx, userID, date, refs)
	if err != nil {
		if errors.Is(err, workouts.ErrInvalidDate) {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add planned exercises for %s on %s: %s", userID, date, err)
		http.Error(w, "failed to add planned exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, AddPlanResponse{
		Log:   updatedLog,
		Added: added,
	}, http.StatusOK)
}
