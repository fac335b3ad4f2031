package profile

import "context"

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=profile_test

type Store interface {
	// GetProfile returns nil, nil when the user has no profile yet.
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	SaveProfile(ctx context.Context, userID string, profile UserProfile) error
}
