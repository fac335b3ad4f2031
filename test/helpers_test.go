//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"
	pkgtesting "github.com/2beens/fittracker/pkg/testing"

	"github.com/stretchr/testify/require"
)

// newSession issues a token the same way the identity provider callback would.
func (s *IntegrationTestSuite) newSession(userID string) string {
	t := s.T()
	ctx, rdb := pkgtesting.GetRedisClientAndCtx(t, s.redisPort)
	token, err := auth.NewSessionStore(auth.DefaultTTL, rdb).CreateSession(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return token
}

// do sends a request to the running server and decodes the response into out, if given.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body, out any) int {
	t := s.T()

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, payload)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}
