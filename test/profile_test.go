//go:build integration

package test

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/energy"
	"github.com/2beens/fittracker/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestProfile() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSession(testUserID)

	// first read stores the default profile
	var p profile.UserProfile
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/profile", token, nil, &p))
	assert.Equal(t, profile.DefaultWeight, p.Weight)
	assert.Equal(t, profile.DefaultHeight, p.Height)
	assert.Equal(t, profile.DefaultGender, p.Gender)

	var needs energy.DailyNeeds
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/profile/energy", token, nil, &needs))
	assert.Equal(t, 1643, needs.BMR)
	assert.Equal(t, 2465, needs.TDEE)

	weight, height, age := 60.0, 165.0, 30
	gender := profile.GenderFemale
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPut, "/profile", token, profile.Patch{
		Weight: &weight,
		Height: &height,
		Age:    &age,
		Gender: &gender,
	}, &p))
	assert.Equal(t, weight, p.Weight)

	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/profile/energy?activity=active", token, nil, &needs))
	assert.Equal(t, 1320, needs.BMR)
	assert.Equal(t, 2277, needs.TDEE)

	badWeight := -1.0
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, http.MethodPut, "/profile", token, profile.Patch{Weight: &badWeight}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, http.MethodGet, "/profile/energy?activity=couch", token, nil, nil))

	// the rejected patch left the stored profile alone
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/profile", token, nil, &p))
	assert.Equal(t, weight, p.Weight)
	require.NotNil(t, p.Age)
	assert.Equal(t, age, *p.Age)
}
