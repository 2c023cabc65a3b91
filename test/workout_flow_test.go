//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymsession/internal/api"
	"github.com/2beens/gymsession/internal/history"
	"github.com/2beens/gymsession/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestWorkoutFlow() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	t := s.T()

	status, _ := s.doRequest(ctx, http.MethodGet, "/live", nil)
	require.Equal(t, http.StatusNotFound, status)

	status, respBytes := s.doRequest(ctx, http.MethodPost, "/live", map[string]any{"name": "push day"})
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	var live api.LiveWorkoutResponse
	require.NoError(t, json.Unmarshal(respBytes, &live))
	workoutID := live.Workout.ID
	require.NotEmpty(t, workoutID)
	assert.Equal(t, workout.ActivityFinished, live.Activity.Type)

	status, _ = s.doRequest(ctx, http.MethodPost, "/live", map[string]any{"name": "second"})
	require.Equal(t, http.StatusConflict, status)

	status, respBytes = s.doRequest(ctx, http.MethodPost, "/live/exercises", map[string]any{"name": "Bench Press", "restDuration": 0})
	require.Equal(t, http.StatusCreated, status, string(respBytes))
	require.NoError(t, json.Unmarshal(respBytes, &live))
	require.Len(t, live.Workout.Exercises, 1)
	setID := live.Workout.Exercises[0].Sets[0].ID

	status, respBytes = s.doRequest(ctx, http.MethodPut, fmt.Sprintf("/live/sets/%s/difficulty", setID), map[string]any{
		"type":   "weight",
		"weight": 60,
		"reps":   8,
	})
	require.Equal(t, http.StatusOK, status, string(respBytes))

	status, respBytes = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/live/sets/%s/finish", setID), nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))
	require.NoError(t, json.Unmarshal(respBytes, &live))
	assert.Equal(t, workout.SetStatusFinished, live.Workout.Exercises[0].Sets[0].Status)
	assert.Equal(t, 480.0, live.Summary.TotalWeightLifted)

	status, respBytes = s.doRequest(ctx, http.MethodPost, "/live/finish", nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))

	// the finished workout is saved asynchronously
	require.Eventually(t, func() bool {
		status, _ := s.doRequest(ctx, http.MethodGet, "/workouts/"+workoutID, nil)
		return status == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/workouts?completed=true", nil)
	require.Equal(t, http.StatusOK, status)
	var list api.WorkoutsListResponse
	require.NoError(t, json.Unmarshal(respBytes, &list))
	require.Len(t, list.Workouts, 1)
	assert.Equal(t, workoutID, list.Workouts[0].ID)
	assert.NotNil(t, list.Workouts[0].EndedAt)

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/history/bench%20press", nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))
	var exerciseHistory history.ExerciseHistory
	require.NoError(t, json.Unmarshal(respBytes, &exerciseHistory))
	assert.Equal(t, workout.DifficultyTypeWeight, exerciseHistory.Type)
	require.Len(t, exerciseHistory.Days, 1)
	assert.False(t, exerciseHistory.Days[0].HasPR)

	status, _ = s.doRequest(ctx, http.MethodGet, "/live", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, http.MethodDelete, "/workouts/"+workoutID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.doRequest(ctx, http.MethodGet, "/workouts/"+workoutID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestRoutines() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	t := s.T()

	status, respBytes := s.doRequest(ctx, http.MethodPost, "/routines", map[string]any{
		"name": "legs",
		"exercises": []map[string]any{
			{
				"name":         "Squat",
				"restDuration": 120,
				"sets": []map[string]any{
					{"restDuration": 120, "difficulty": map[string]any{"type": "weight", "weight": 100, "reps": 5}},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	var routine workout.Routine
	require.NoError(t, json.Unmarshal(respBytes, &routine))
	require.NotEmpty(t, routine.ID)

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/routines", nil)
	require.Equal(t, http.StatusOK, status)
	var routines []workout.Routine
	require.NoError(t, json.Unmarshal(respBytes, &routines))
	require.Len(t, routines, 1)
	assert.Equal(t, "legs", routines[0].Name)
	assert.Equal(t, workout.WeightDifficulty{Weight: 100, Reps: 5}, routines[0].Exercises[0].Sets[0].Difficulty)
}
