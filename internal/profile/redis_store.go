package profile

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

func profileKey(userID string) string {
	return "fittracker:users:" + userID + ":profile"
}

func (s *RedisStore) GetProfile(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := s.redisClient.Get(ctx, profileKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) SaveProfile(ctx context.Context, userID string, profile UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrEmptyUserID
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.redisClient.Set(ctx, profileKey(userID), string(profileJson), 0).Err(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}
