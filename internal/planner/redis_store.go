package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func planKey(userID string) string {
	return "fittracker:users:" + userID + ":weeklyPlan"
}

func (s *RedisStore) GetPlan(ctx context.Context, userID string) (_ WeeklyPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.planner.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := s.redisClient.Get(ctx, planKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return WeeklyPlan{}, nil
	}
	if err != nil {
		return nil, err
	}

	plan := WeeklyPlan{}
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return plan, nil
}

func (s *RedisStore) SavePlan(ctx context.Context, userID string, plan WeeklyPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.planner.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrEmptyUserID
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := s.redisClient.Set(ctx, planKey(userID), string(planJson), 0).Err(); err != nil {
		return fmt.Errorf("set plan: %w", err)
	}
	return nil
}
