package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/catalog"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type logsService interface {
	ListLogs(ctx context.Context, userID string) ([]WorkoutLog, error)
	GetLog(ctx context.Context, userID, logID string) (*WorkoutLog, error)
	GetLogByDate(ctx context.Context, userID, date string) (*WorkoutLog, error)
	UpsertLog(ctx context.Context, userID, date string, incoming []ExerciseEntry) (*WorkoutLog, error)
	AddExercises(ctx context.Context, userID, date string, refs []ExerciseRef) (*WorkoutLog, int, error)
	ReplaceExercises(ctx context.Context, userID, logID string, exercises []ExerciseEntry) (*WorkoutLog, error)
	UpdateLog(ctx context.Context, userID, logID string, patch LogPatch) (*WorkoutLog, error)
	DeleteLog(ctx context.Context, userID, logID string) error
	Stats(ctx context.Context, userID string) (*HistoryStats, error)
}

type exerciseLookup interface {
	GetExercise(ctx context.Context, id string) (*catalog.Exercise, error)
}

type UpsertLogRequest struct {
	Date      string          `json:"date"`
	Exercises []ExerciseEntry `json:"exercises"`
}

// ReplaceExercisesRequest requires the exercises key, an explicit empty list
// clears the log.
type ReplaceExercisesRequest struct {
	Exercises *[]ExerciseEntry `json:"exercises"`
}

type AddExercisesRequest struct {
	ExerciseIDs []string `json:"exerciseIds"`
}

type AddExercisesResponse struct {
	Log   *WorkoutLog `json:"log"`
	Added int         `json:"added"`
}

type DeleteLogResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service   logsService
	exercises exerciseLookup
	newID     func() string
}

func NewHandler(service logsService, exercises exerciseLookup) *Handler {
	return &Handler{
		service:   service,
		exercises: exercises,
		newID:     uuid.NewString,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/logs", handler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
	router.HandleFunc("/logs", handler.HandleUpsert).Methods("POST", "OPTIONS").Name("upsert-log")
	router.HandleFunc("/logs/date/{date}", handler.HandleGetByDate).Methods("GET", "OPTIONS").Name("get-log-by-date")
	router.HandleFunc("/logs/date/{date}/exercises", handler.HandleAddExercises).Methods("POST", "OPTIONS").Name("add-exercises-to-log")
	router.HandleFunc("/logs/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("logs-stats")
	router.HandleFunc("/logs/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-log")
	router.HandleFunc("/logs/{id}", handler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-log")
	router.HandleFunc("/logs/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log")
	router.HandleFunc("/logs/{id}/exercises", handler.HandleReplaceExercises).Methods("PUT", "OPTIONS").Name("replace-log-exercises")
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, ErrLogNotFound):
		http.Error(w, "workout log not found", http.StatusNotFound)
	case errors.Is(err, ErrEmptyUserID):
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidEntry),
		errors.Is(err, ErrLogIDEmpty),
		errors.Is(err, ErrEmptyLogPatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

func userFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	}
	return userID, ok
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.list")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	logs, err := handler.service.ListLogs(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to list logs")
		return
	}
	span.SetAttributes(attribute.Int("logs.count", len(logs)))

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.stats")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get log stats")
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.get")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	l, err := handler.service.GetLog(ctx, userID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "failed to get log")
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

// HandleGetByDate answers with a JSON null when there is no log for the date.
func (handler *Handler) HandleGetByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.get-by-date")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	l, err := handler.service.GetLogByDate(ctx, userID, mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err, "failed to get log")
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

// HandleUpsert appends exercises to the day's log, creating it if needed.
func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.upsert")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req UpsertLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert log, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := ValidateEntries(req.Exercises); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	FillMissingIDs(req.Exercises, handler.newID)

	l, err := handler.service.UpsertLog(ctx, userID, req.Date, req.Exercises)
	if err != nil {
		writeError(w, err, "failed to save log")
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

func (handler *Handler) HandleAddExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.add-exercises")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req AddExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercises, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	refs := make([]ExerciseRef, 0, len(req.ExerciseIDs))
	for _, id := range req.ExerciseIDs {
		exercise, err := handler.exercises.GetExercise(ctx, id)
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			http.Error(w, "unknown exercise: "+id, http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Errorf("failed to look up exercise %s: %s", id, err)
			http.Error(w, "failed to look up exercise", http.StatusInternalServerError)
			return
		}
		refs = append(refs, ExerciseRef{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
		})
	}

	l, added, err := handler.service.AddExercises(ctx, userID, mux.Vars(r)["date"], refs)
	if err != nil {
		writeError(w, err, "failed to add exercises")
		return
	}
	pkg.WriteJSON(w, AddExercisesResponse{Log: l, Added: added}, http.StatusOK)
}

// HandleUpdate changes duration and notes. Exercise edits go through
// HandleReplaceExercises so merge and replace never share a route.
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.update")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var patch LogPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("update log, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if patch.Exercises != nil {
		http.Error(w, "exercises can not be patched, use PUT /logs/{id}/exercises", http.StatusBadRequest)
		return
	}

	l, err := handler.service.UpdateLog(ctx, userID, mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err, "failed to update log")
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

func (handler *Handler) HandleReplaceExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.replace-exercises")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req ReplaceExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("replace exercises, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Exercises == nil {
		http.Error(w, "exercises missing, send an empty list to clear the log", http.StatusBadRequest)
		return
	}
	exercises := *req.Exercises
	if exercises == nil {
		exercises = []ExerciseEntry{}
	}
	if err := ValidateEntries(exercises); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	FillMissingIDs(exercises, handler.newID)

	l, err := handler.service.ReplaceExercises(ctx, userID, mux.Vars(r)["id"], exercises)
	if err != nil {
		writeError(w, err, "failed to replace exercises")
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.delete")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteLog(ctx, userID, id); err != nil {
		writeError(w, err, "failed to delete log")
		return
	}
	pkg.WriteJSON(w, DeleteLogResponse{DeletedID: id}, http.StatusOK)
}
