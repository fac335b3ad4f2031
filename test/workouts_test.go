//go:build integration

package test

import (
	"context"
	"net/http"

	"github.com/2beens/fittracker/internal/energy"
	"github.com/2beens/fittracker/internal/planner"
	"github.com/2beens/fittracker/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestWorkoutLogs() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSession(testUserID)
	const date = "2026-10-19"

	var created workouts.WorkoutLog
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/logs", token, workouts.UpsertLogRequest{
		Date: date,
		Exercises: []workouts.ExerciseEntry{
			{ExerciseID: "1", ExerciseName: "Bench Press", Sets: []workouts.Set{
				{Reps: 10, Weight: 60, Completed: true},
				{Reps: 8, Weight: 70, Completed: true},
			}},
		},
	}, &created))
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Exercises, 1)
	assert.NotEmpty(t, created.Exercises[0].ID)

	// same date merges into the same row
	var merged workouts.WorkoutLog
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/logs", token, workouts.UpsertLogRequest{
		Date: date,
		Exercises: []workouts.ExerciseEntry{
			{ExerciseID: "68", ExerciseName: "Running", Sets: []workouts.Set{{Reps: 1800, Completed: true}}},
		},
	}, &merged))
	assert.Equal(t, created.ID, merged.ID)
	require.Len(t, merged.Exercises, 2)
	assert.Equal(t, "Bench Press", merged.Exercises[0].ExerciseName)
	assert.Equal(t, "Running", merged.Exercises[1].ExerciseName)

	var byDate workouts.WorkoutLog
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/logs/date/"+date, token, nil, &byDate))
	assert.Equal(t, merged.Exercises, byDate.Exercises)

	var workoutEnergy energy.WorkoutEnergy
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/logs/"+created.ID+"/energy", token, nil, &workoutEnergy))
	// 7.7 bench press + 402.5 running at the default 70kg
	assert.Equal(t, 410.2, workoutEnergy.TotalKcal)

	notes := "legs were sore"
	var patched workouts.WorkoutLog
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPatch, "/logs/"+created.ID, token, workouts.LogPatch{Notes: &notes}, &patched))
	assert.Equal(t, notes, patched.Notes)
	assert.Len(t, patched.Exercises, 2)

	var stats workouts.HistoryStats
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/logs/stats", token, nil, &stats))
	assert.GreaterOrEqual(t, stats.Workouts, 1)
	assert.GreaterOrEqual(t, stats.Exercises, 2)
	assert.GreaterOrEqual(t, stats.CompletedSets, 3)

	var replaced workouts.WorkoutLog
	remaining := merged.Exercises[1:]
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPut, "/logs/"+created.ID+"/exercises", token, workouts.ReplaceExercisesRequest{
		Exercises: &remaining,
	}, &replaced))
	require.Len(t, replaced.Exercises, 1)
	assert.Equal(t, "Running", replaced.Exercises[0].ExerciseName)

	// another user sees nothing
	otherToken := s.newSession("someone-else")
	var otherLogs []workouts.WorkoutLog
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/logs", otherToken, nil, &otherLogs))
	assert.Empty(t, otherLogs)
	assert.Equal(t, http.StatusNotFound, s.do(ctx, http.MethodGet, "/logs/"+created.ID, otherToken, nil, nil))

	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodDelete, "/logs/"+created.ID, token, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(ctx, http.MethodGet, "/logs/"+created.ID, token, nil, nil))
}

func (s *IntegrationTestSuite) TestWorkoutLogs_ListNewestFirst() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSession(testUserID)
	for _, date := range []string{"2026-10-17", "2026-10-19", "2026-10-18"} {
		require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/logs", token, workouts.UpsertLogRequest{
			Date: date,
			Exercises: []workouts.ExerciseEntry{
				{ExerciseID: "5", ExerciseName: "Deadlift", Sets: []workouts.Set{{Reps: 5, Weight: 100, Completed: true}}},
			},
		}, nil))
	}

	var logs []workouts.WorkoutLog
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/logs", token, nil, &logs))
	require.Len(t, logs, 3)
	assert.Equal(t, "2026-10-19", logs[0].Date)
	assert.Equal(t, "2026-10-18", logs[1].Date)
	assert.Equal(t, "2026-10-17", logs[2].Date)
}

func (s *IntegrationTestSuite) TestPlanner() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.newSession(testUserID)

	plan := planner.WeeklyPlan{
		"monday": {Exercises: []planner.PlannedExercise{
			{ID: "p1", ExerciseID: "1", ExerciseName: "Bench Press", Order: 1},
			{ID: "p2", ExerciseID: "68", ExerciseName: "Running", Order: 2},
		}},
	}
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPut, "/planner", token, plan, nil))

	var stored planner.WeeklyPlan
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/planner", token, nil, &stored))
	require.Contains(t, stored, "monday")
	assert.Len(t, stored["monday"].Exercises, 2)

	// 2026-10-19 is a monday
	var added planner.AddPlanResponse
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/logs/date/2026-10-19/plan", token, nil, &added))
	assert.Equal(t, 2, added.Added)
	require.NotNil(t, added.Log)

	// the planned exercises are in the log already
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/logs/date/2026-10-19/plan", token, nil, &added))
	assert.Equal(t, 0, added.Added)
	assert.Len(t, added.Log.Exercises, 2)
}
