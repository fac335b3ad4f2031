package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*RedisStore)(nil)

const redisKeyPrefix = "fittracker:users:"

// RedisStore keeps each user's logs in one hash (log id -> JSON log), mirroring
// the users/{uid}/workoutLogs/{id} layout of a flat key-value database.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func logsKey(userID string) string {
	return redisKeyPrefix + userID + ":workoutLogs"
}

func (s *RedisStore) GetLogs(ctx context.Context, userID string) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.workouts.getlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.redisClient.HGetAll(ctx, logsKey(userID))
	if err := cmd.Err(); err != nil {
		return nil, err
	}

	logs := make([]WorkoutLog, 0, len(cmd.Val()))
	for id, raw := range cmd.Val() {
		l, err := unmarshalLog(id, raw)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}
	span.SetAttributes(attribute.Int("logs.count", len(logs)))
	return logs, nil
}

func (s *RedisStore) GetLogByDate(ctx context.Context, userID, date string) (*WorkoutLog, error) {
	logs, err := s.GetLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].Date == date {
			return &logs[i], nil
		}
	}
	return nil, nil
}

func (s *RedisStore) GetLog(ctx context.Context, userID, id string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.workouts.getlog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	raw, err := s.redisClient.HGet(ctx, logsKey(userID), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshalLog(id, raw)
}

func (s *RedisStore) CreateLog(ctx context.Context, userID string, log WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.workouts.create")
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

	if err := s.put(ctx, userID, log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *RedisStore) UpdateLog(ctx context.Context, userID, id string, patch LogPatch) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	current, err := s.GetLog(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*current)
	if err := s.put(ctx, userID, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *RedisStore) DeleteLog(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	deleted, err := s.redisClient.HDel(ctx, logsKey(userID), id).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (s *RedisStore) put(ctx context.Context, userID string, log WorkoutLog) error {
	logJson, err := marshalLog(log)
	if err != nil {
		return err
	}
	if err := s.redisClient.HSet(ctx, logsKey(userID), log.ID, logJson).Err(); err != nil {
		return fmt.Errorf("hset log %s: %w", log.ID, err)
	}
	return nil
}

// the id is the hash field, so it is not repeated in the stored value
type storedLog struct {
	WorkoutLog
	ID string `json:"id,omitempty"`
}

func marshalLog(log WorkoutLog) (string, error) {
	logJson, err := json.Marshal(storedLog{WorkoutLog: log})
	if err != nil {
		return "", fmt.Errorf("marshal log %s: %w", log.ID, err)
	}
	return string(logJson), nil
}

func unmarshalLog(id, raw string) (*WorkoutLog, error) {
	var stored storedLog
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("unmarshal log %s: %w", id, err)
	}
	l := stored.WorkoutLog
	l.ID = id
	if l.Exercises == nil {
		l.Exercises = []ExerciseEntry{}
	}
	return &l, nil
}
