package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ logsService = (*Reconciler)(nil)

// ExerciseRef points to a catalog exercise that should get an (empty) entry in a day's log.
type ExerciseRef struct {
	ExerciseID   string
	ExerciseName string
}

// Reconciler keeps at most one log per user and date. Adding exercises goes
// through UpsertLog (append), editing an existing log goes through
// ReplaceExercises / UpdateLog (keyed by log id). The two paths are never mixed.
type Reconciler struct {
	store   Store
	metrics *metrics.Manager

	// injectable for tests
	Now       func() time.Time
	NewIDFunc func() string
}

func NewReconciler(store Store, metricsManager *metrics.Manager) *Reconciler {
	return &Reconciler{
		store:     store,
		metrics:   metricsManager,
		Now:       time.Now,
		NewIDFunc: uuid.NewString,
	}
}

// UpsertLog appends incoming exercises to the user's log for date, creating the
// log when there is none. The caller must not re-send exercises already present.
func (r *Reconciler) UpsertLog(ctx context.Context, userID, date string, incoming []ExerciseEntry) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.workouts.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))
	span.SetAttributes(attribute.Int("incoming", len(incoming)))

	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}

	existing, err := r.store.GetLogByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get log by date: %w", err)
	}

	if existing != nil {
		if len(incoming) == 0 {
			return existing, nil
		}
		merged := make([]ExerciseEntry, 0, len(existing.Exercises)+len(incoming))
		merged = append(merged, existing.Exercises...)
		merged = append(merged, incoming...)

		updated, err := r.store.UpdateLog(ctx, userID, existing.ID, LogPatch{Exercises: merged})
		if err != nil {
			return nil, fmt.Errorf("merge exercises into log %s: %w", existing.ID, err)
		}
		if r.metrics != nil {
			r.metrics.CounterLogsMerged.Inc()
		}
		log.Debugf("merged %d exercises into log [%s] for date [%s]", len(incoming), existing.ID, date)
		return updated, nil
	}

	if incoming == nil {
		incoming = []ExerciseEntry{}
	}
	newLog := WorkoutLog{
		ID:        r.NewIDFunc(),
		Date:      date,
		Exercises: incoming,
		CreatedAt: r.Now().UTC(),
	}
	created, err := r.store.CreateLog(ctx, userID, newLog)
	if err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}
	if r.metrics != nil {
		r.metrics.CounterLogsCreated.Inc()
	}
	log.Debugf("created log [%s] for date [%s] with %d exercises", created.ID, date, len(incoming))
	return created, nil
}

// AddExercises creates empty entries for the referenced exercises in the log
// for date, skipping exercises that already have an entry there. It returns
// the resulting log and the number of entries actually added.
func (r *Reconciler) AddExercises(ctx context.Context, userID, date string, refs []ExerciseRef) (_ *WorkoutLog, added int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.workouts.add-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, 0, ErrEmptyUserID
	}
	if _, err := ParseDate(date); err != nil {
		return nil, 0, err
	}

	existing, err := r.store.GetLogByDate(ctx, userID, date)
	if err != nil {
		return nil, 0, fmt.Errorf("get log by date: %w", err)
	}

	requested := make(map[string]bool)
	var newEntries []ExerciseEntry
	for _, ref := range refs {
		if requested[ref.ExerciseID] || (existing != nil && existing.HasExercise(ref.ExerciseID)) {
			continue
		}
		requested[ref.ExerciseID] = true
		newEntries = append(newEntries, ExerciseEntry{
			ID:           r.NewIDFunc(),
			ExerciseID:   ref.ExerciseID,
			ExerciseName: ref.ExerciseName,
			Sets:         []Set{},
		})
	}
	span.SetAttributes(attribute.Int("added", len(newEntries)))

	if len(newEntries) == 0 {
		return existing, 0, nil
	}

	updated, err := r.UpsertLog(ctx, userID, date, newEntries)
	if err != nil {
		return nil, 0, err
	}
	return updated, len(newEntries), nil
}

// ReplaceExercises overwrites the whole exercise list of an existing log.
// It never creates a log.
func (r *Reconciler) ReplaceExercises(ctx context.Context, userID, logID string, exercises []ExerciseEntry) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.workouts.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	if exercises == nil {
		exercises = []ExerciseEntry{}
	}

	updated, err := r.UpdateLog(ctx, userID, logID, LogPatch{Exercises: exercises})
	if err != nil {
		return nil, err
	}
	if r.metrics != nil {
		r.metrics.CounterLogsReplaced.Inc()
	}
	return updated, nil
}

// UpdateLog applies a partial update to an existing log.
func (r *Reconciler) UpdateLog(ctx context.Context, userID, logID string, patch LogPatch) (*WorkoutLog, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if logID == "" {
		return nil, ErrLogIDEmpty
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyLogPatch
	}

	updated, err := r.store.UpdateLog(ctx, userID, logID, patch)
	if err != nil {
		return nil, fmt.Errorf("update log %s: %w", logID, err)
	}
	return updated, nil
}

func (r *Reconciler) DeleteLog(ctx context.Context, userID, logID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if logID == "" {
		return ErrLogIDEmpty
	}
	if err := r.store.DeleteLog(ctx, userID, logID); err != nil {
		return fmt.Errorf("delete log %s: %w", logID, err)
	}
	if r.metrics != nil {
		r.metrics.CounterLogsDeleted.Inc()
	}
	return nil
}

func (r *Reconciler) GetLog(ctx context.Context, userID, logID string) (*WorkoutLog, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return r.store.GetLog(ctx, userID, logID)
}

func (r *Reconciler) GetLogByDate(ctx context.Context, userID, date string) (*WorkoutLog, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	return r.store.GetLogByDate(ctx, userID, date)
}

// ListLogs returns the user's logs, newest date first.
func (r *Reconciler) ListLogs(ctx context.Context, userID string) ([]WorkoutLog, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	logs, err := r.store.GetLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}
	sortByDateDesc(logs)
	return logs, nil
}

// Stats sums up the user's whole history: workouts, exercises and sets.
func (r *Reconciler) Stats(ctx context.Context, userID string) (_ *HistoryStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := r.ListLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := SummarizeLogs(logs)
	span.SetAttributes(attribute.Int("workouts", stats.Workouts))
	return &stats, nil
}
