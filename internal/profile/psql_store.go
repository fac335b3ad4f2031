package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func (s *PsqlStore) GetProfile(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		p         UserProfile
		age       *int
		gender    *string
		updatedAt time.Time
	)
	err = s.db.QueryRow(
		ctx,
		`
			SELECT weight, height, age, gender, updated_at
			FROM user_profile
			WHERE user_id = $1;`,
		userID,
	).Scan(&p.Weight, &p.Height, &age, &gender, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p.Age = age
	if gender != nil {
		p.Gender = Gender(*gender)
	}
	p.UpdatedAt = updatedAt.UTC()
	return &p, nil
}

func (s *PsqlStore) SaveProfile(ctx context.Context, userID string, profile UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrEmptyUserID
	}

	var gender *string
	if profile.Gender != "" {
		g := string(profile.Gender)
		gender = &g
	}

	tag, err := s.db.Exec(
		ctx,
		`
			INSERT INTO user_profile (user_id, weight, height, age, gender, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE SET
				weight = EXCLUDED.weight,
				height = EXCLUDED.height,
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				updated_at = EXCLUDED.updated_at;`,
		userID, profile.Weight, profile.Height, profile.Age, gender, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("profile not saved")
	}
	return nil
}
