package energy

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/calories"
	"github.com/2beens/fittracker/internal/profile"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=energy_mocks_test.go -package=energy_test

var ErrUnknownActivityLevel = errors.New("unknown activity level")

type logGetter interface {
	GetLog(ctx context.Context, userID, logID string) (*workouts.WorkoutLog, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*profile.UserProfile, error)
}

type ExerciseEnergy struct {
	EntryID       string  `json:"entryId"`
	ExerciseID    string  `json:"exerciseId"`
	ExerciseName  string  `json:"exerciseName"`
	CompletedSets int     `json:"completedSets"`
	Kcal          float64 `json:"kcal"`
}

type WorkoutEnergy struct {
	LogID        string           `json:"logId"`
	Date         string           `json:"date"`
	BodyWeightKg float64          `json:"bodyWeightKg"`
	Exercises    []ExerciseEnergy `json:"exercises"`
	TotalKcal    float64          `json:"totalKcal"`
}

type DailyNeeds struct {
	BMR            int     `json:"bmr"`
	ActivityLevel  string  `json:"activityLevel,omitempty"`
	ActivityFactor float64 `json:"activityFactor"`
	TDEE           int     `json:"tdee"`
}

// Service combines stored logs and the user's profile with the calorie math.
type Service struct {
	logs     logGetter
	profiles profileGetter
	metrics  *metrics.Manager
}

func NewService(logs logGetter, profiles profileGetter, metricsManager *metrics.Manager) *Service {
	return &Service{
		logs:     logs,
		profiles: profiles,
		metrics:  metricsManager,
	}
}

// WorkoutEnergy estimates the kcal burned in one log, using the profile body weight.
func (s *Service) WorkoutEnergy(ctx context.Context, userID, logID string) (_ *WorkoutEnergy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.energy.workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	l, err := s.logs.GetLog(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	result := &WorkoutEnergy{
		LogID:        l.ID,
		Date:         l.Date,
		BodyWeightKg: p.Weight,
		Exercises:    make([]ExerciseEnergy, 0, len(l.Exercises)),
		TotalKcal:    calories.EnergyForWorkout(l.Exercises, p.Weight),
	}
	for _, e := range l.Exercises {
		result.Exercises = append(result.Exercises, ExerciseEnergy{
			EntryID:       e.ID,
			ExerciseID:    e.ExerciseID,
			ExerciseName:  e.ExerciseName,
			CompletedSets: e.CompletedSetsCount(),
			Kcal:          calories.EnergyForExercise(e, p.Weight),
		})
	}

	span.SetAttributes(attribute.Float64("kcal", result.TotalKcal))
	if s.metrics != nil && result.TotalKcal > 0 {
		s.metrics.HistogramWorkoutEnergy.Observe(result.TotalKcal)
	}
	return result, nil
}

// DailyNeeds computes BMR and TDEE for the user. An empty activity level uses
// calories.DefaultActivityFactor.
func (s *Service) DailyNeeds(ctx context.Context, userID, activityLevel string) (_ *DailyNeeds, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.energy.daily-needs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	factor, known := calories.ActivityFactorFor(activityLevel)
	if !known && activityLevel != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownActivityLevel, activityLevel)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := calories.ValidateProfile(*p); err != nil {
		return nil, err
	}

	needs := &DailyNeeds{
		BMR:            calories.BMR(*p),
		ActivityFactor: factor,
		TDEE:           calories.TDEE(*p, factor),
	}
	if known {
		needs.ActivityLevel = activityLevel
	}
	return needs, nil
}
