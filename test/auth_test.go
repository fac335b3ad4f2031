//go:build integration

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
)

func (s *IntegrationTestSuite) TestSessionLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, http.MethodGet, "/logs", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, http.MethodGet, "/logs", "not-a-session", nil, nil))

	token := s.newSession(testUserID)
	assert.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/logs", token, nil, nil))

	assert.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/a/logout", token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, http.MethodGet, "/logs", token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, http.MethodPost, "/a/logout", token, nil, nil))
}

func (s *IntegrationTestSuite) TestPublicRoutes() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/version", "", nil, nil))
	assert.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/exercises?category=cardio", "", nil, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, s.do(ctx, http.MethodPost, "/exercises", "", nil, nil))
}
