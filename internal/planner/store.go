package planner

import "context"

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=planner_test

type Store interface {
	// GetPlan returns an empty plan when the user has none.
	GetPlan(ctx context.Context, userID string) (WeeklyPlan, error)
	SavePlan(ctx context.Context, userID string, plan WeeklyPlan) error
}
