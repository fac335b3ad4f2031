package auth

import "context"

var _ SessionResolver = (*StaticResolver)(nil)

// StaticResolver resolves tokens from a fixed map. Used with the memory
// storage backend and in tests.
type StaticResolver struct {
	Sessions map[string]string
}

func NewStaticResolver(sessions map[string]string) *StaticResolver {
	if sessions == nil {
		sessions = map[string]string{}
	}
	return &StaticResolver{
		Sessions: sessions,
	}
}

func (r *StaticResolver) UserForToken(_ context.Context, token string) (string, error) {
	userID, ok := r.Sessions[token]
	if !ok || userID == "" {
		return "", ErrUnauthenticated
	}
	return userID, nil
}
