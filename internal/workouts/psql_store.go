package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*PsqlStore)(nil)

type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) GetLogs(ctx context.Context, userID string) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`
			SELECT id, date, exercises, duration, notes, created_at
			FROM workout_log
			WHERE user_id = $1
			ORDER BY date DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs, err := s.rows2logs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2logs: %w", err)
	}
	span.SetAttributes(attribute.Int("logs.count", len(logs)))
	return logs, nil
}

func (s *PsqlStore) GetLogByDate(ctx context.Context, userID, date string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getbydate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := s.db.Query(
		ctx,
		`
			SELECT id, date, exercises, duration, notes, created_at
			FROM workout_log
			WHERE user_id = $1 AND date = $2
			ORDER BY created_at
			LIMIT 1;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logs, err := s.rows2logs(rows)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

func (s *PsqlStore) GetLog(ctx context.Context, userID, id string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	rows, err := s.db.Query(
		ctx,
		`
			SELECT id, date, exercises, duration, notes, created_at
			FROM workout_log
			WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logs, err := s.rows2logs(rows)
	if err != nil {
		return nil, err
	}
	if len(logs) != 1 {
		return nil, ErrLogNotFound
	}
	return &logs[0], nil
}

func (s *PsqlStore) CreateLog(ctx context.Context, userID string, log WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if log.ID == "" {
		return nil, ErrLogIDEmpty
	}
	span.SetAttributes(attribute.String("log.id", log.ID))

	exercisesJson, err := json.Marshal(log.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO workout_log
				(id, user_id, date, exercises, duration, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		log.ID, userID, log.Date, exercisesJson, log.Duration, log.Notes, log.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &log, nil
}

// UpdateLog only touches the columns set in the patch.
func (s *PsqlStore) UpdateLog(ctx context.Context, userID, id string, patch LogPatch) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	var exercisesJson []byte
	if patch.Exercises != nil {
		exercisesJson, err = json.Marshal(patch.Exercises)
		if err != nil {
			return nil, fmt.Errorf("marshal exercises: %w", err)
		}
	}

	tag, err := s.db.Exec(
		ctx,
		`
			UPDATE workout_log SET
				exercises = COALESCE($3::jsonb, exercises),
				duration = COALESCE($4::integer, duration),
				notes = COALESCE($5::text, notes)
			WHERE user_id = $1 AND id = $2;`,
		userID, id, exercisesJson, patch.Duration, patch.Notes,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrLogNotFound
	}

	return s.GetLog(ctx, userID, id)
}

func (s *PsqlStore) DeleteLog(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (s *PsqlStore) rows2logs(rows pgx.Rows) ([]WorkoutLog, error) {
	logs := make([]WorkoutLog, 0)
	for rows.Next() {
		var id string
		var date string
		var exercisesBytes []byte
		var duration *int
		var notes *string
		var createdAt time.Time
		if err := rows.Scan(&id, &date, &exercisesBytes, &duration, &notes, &createdAt); err != nil {
			return nil, err
		}

		l := WorkoutLog{
			ID:        id,
			Date:      date,
			Duration:  duration,
			CreatedAt: createdAt,
			Exercises: []ExerciseEntry{},
		}
		if notes != nil {
			l.Notes = *notes
		}
		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &l.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for log %s: %w", id, err)
			}
		}

		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return logs, nil
}
