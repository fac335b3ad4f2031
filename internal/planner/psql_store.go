package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (s *PsqlStore) GetPlan(ctx context.Context, userID string) (_ WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan := WeeklyPlan{}
	err = s.db.QueryRow(
		ctx,
		`SELECT plan FROM weekly_plan WHERE user_id = $1;`,
		userID,
	).Scan(&plan)
	if errors.Is(err, pgx.ErrNoRows) {
		return WeeklyPlan{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return plan, nil
}

func (s *PsqlStore) SavePlan(ctx context.Context, userID string, plan WeeklyPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrEmptyUserID
	}

	_, err = s.db.Exec(
		ctx,
		`
			INSERT INTO weekly_plan (user_id, plan, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id) DO UPDATE SET
				plan = EXCLUDED.plan,
				updated_at = EXCLUDED.updated_at;`,
		userID, plan,
	)
	if err != nil {
		return fmt.Errorf("upsert plan: %w", err)
	}
	return nil
}
