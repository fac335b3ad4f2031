package workouts

import "context"

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=workouts_test

// Store persists workout logs keyed by user. Implementations do not enforce the
// one-log-per-date rule, the Reconciler does.
type Store interface {
	GetLogs(ctx context.Context, userID string) ([]WorkoutLog, error)
	// GetLogByDate returns nil, nil when the user has no log for the date.
	GetLogByDate(ctx context.Context, userID, date string) (*WorkoutLog, error)
	GetLog(ctx context.Context, userID, id string) (*WorkoutLog, error)
	CreateLog(ctx context.Context, userID string, log WorkoutLog) (*WorkoutLog, error)
	UpdateLog(ctx context.Context, userID, id string, patch LogPatch) (*WorkoutLog, error)
	DeleteLog(ctx context.Context, userID, id string) error
}
