package energy

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/calories"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type energyService interface {
	WorkoutEnergy(ctx context.Context, userID, logID string) (*WorkoutEnergy, error)
	DailyNeeds(ctx context.Context, userID, activityLevel string) (*DailyNeeds, error)
}

type Handler struct {
	service energyService
}

func NewHandler(service energyService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/logs/{id}/energy", handler.HandleWorkoutEnergy).Methods("GET", "OPTIONS").Name("log-energy")
	router.HandleFunc("/profile/energy", handler.HandleDailyNeeds).Methods("GET", "OPTIONS").Name("profile-energy")
}

func (handler *Handler) HandleWorkoutEnergy(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.energy.workout")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	result, err := handler.service.WorkoutEnergy(ctx, userID, mux.Vars(r)["id"])
	if errors.Is(err, workouts.ErrLogNotFound) {
		http.Error(w, "workout log not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to compute workout energy: %s", err)
		http.Error(w, "failed to compute workout energy", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleDailyNeeds(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.energy.daily-needs")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	needs, err := handler.service.DailyNeeds(ctx, userID, r.URL.Query().Get("activity"))
	if errors.Is(err, ErrUnknownActivityLevel) || errors.Is(err, calories.ErrInvalidProfile) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to compute daily needs: %s", err)
		http.Error(w, "failed to compute daily needs", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, needs, http.StatusOK)
}
