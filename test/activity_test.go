//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitstats/internal/activity"
	"github.com/2beens/fitstats/internal/fitness"
	"github.com/2beens/fitstats/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestActivity_LogListSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.deleteAllActivities()

	userID, token := s.newUserSession(ctx)

	distance := 5.0
	weight := 80.0
	resp, body := s.doRequest(ctx, http.MethodPost, "/activity/log", token, activity.NewActivity{
		Type:       "Running",
		Duration:   30,
		Distance:   &distance,
		UserWeight: &weight,
		Notes:      "morning run",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, string(body))

	var run activity.Activity
	require.NoError(s.T(), json.Unmarshal(body, &run))
	assert.NotEmpty(s.T(), run.ID)
	assert.Equal(s.T(), userID, run.UserID)
	assert.Equal(s.T(), fitness.ActivityTypeRunning, run.Type)
	assert.Equal(s.T(), 320, run.CaloriesBurned)

	var withPace struct {
		Pace *float64 `json:"pace"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &withPace))
	require.NotNil(s.T(), withPace.Pace)
	assert.InDelta(s.T(), 6.0, *withPace.Pace, 0.0001)

	time.Sleep(10 * time.Millisecond)
	resp, body = s.doRequest(ctx, http.MethodPost, "/activity/log", token, activity.NewActivity{
		Type:     "walking",
		Duration: 60,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, string(body))

	// another user's activity must never show up
	_, otherToken := s.newUserSession(ctx)
	resp, _ = s.doRequest(ctx, http.MethodPost, "/activity/log", otherToken, activity.NewActivity{
		Type:     "yoga",
		Duration: 45,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp, body = s.doRequest(ctx, http.MethodGet, "/activity/list", token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var listed []activity.Activity
	require.NoError(s.T(), json.Unmarshal(body, &listed))
	require.Len(s.T(), listed, 2)
	assert.Equal(s.T(), fitness.ActivityTypeWalking, listed[0].Type)
	assert.Equal(s.T(), 245, listed[0].CaloriesBurned)
	assert.Equal(s.T(), run.ID, listed[1].ID)

	resp, body = s.doRequest(ctx, http.MethodGet, "/activity/list?type=running", token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.NoError(s.T(), json.Unmarshal(body, &listed))
	require.Len(s.T(), listed, 1)
	assert.Equal(s.T(), run.ID, listed[0].ID)

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(time.DateOnly)
	resp, body = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/activity/list?startDate=%s", tomorrow), token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.JSONEq(s.T(), "[]", string(body))

	resp, body = s.doRequest(ctx, http.MethodGet, "/activity/summary", token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var summary activity.Summary
	require.NoError(s.T(), json.Unmarshal(body, &summary))
	assert.Equal(s.T(), 2, summary.TotalWorkouts)
	assert.InDelta(s.T(), 90.0, summary.TotalMinutes, 0.0001)
	assert.Equal(s.T(), 565, summary.TotalCalories)
	assert.Equal(s.T(), 1, summary.WorkoutStreak)

	var count int
	require.NoError(s.T(), s.DB.QueryRow("SELECT COUNT(*) FROM activity").Scan(&count))
	assert.Equal(s.T(), 3, count)
}

func (s *IntegrationTestSuite) TestActivity_Validation() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, token := s.newUserSession(ctx)

	testCases := []struct {
		name string
		in   activity.NewActivity
	}{
		{name: "unknown type", in: activity.NewActivity{Type: "skydiving", Duration: 10}},
		{name: "zero duration", in: activity.NewActivity{Type: "running", Duration: 0}},
		{name: "negative duration", in: activity.NewActivity{Type: "running", Duration: -5}},
	}
	for _, tc := range testCases {
		resp, body := s.doRequest(ctx, http.MethodPost, "/activity/log", token, tc.in)
		assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, tc.name)

		var errResp pkg.ErrorResponse
		require.NoError(s.T(), json.Unmarshal(body, &errResp), tc.name)
		assert.NotEmpty(s.T(), errResp.Message, tc.name)
	}

	resp, _ := s.doRequest(ctx, http.MethodGet, "/activity/list?startDate=yesterday", token, nil)
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestActivity_Unauthorized() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, _ := s.doRequest(ctx, http.MethodGet, "/activity/list", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.doRequest(ctx, http.MethodGet, "/activity/summary", "not-a-session", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)

	_, token := s.newUserSession(ctx)
	loggedOut, err := s.authService.Logout(ctx, token)
	require.NoError(s.T(), err)
	require.True(s.T(), loggedOut)

	resp, _ = s.doRequest(ctx, http.MethodGet, "/activity/summary", token, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)

	// types are public
	resp, body := s.doRequest(ctx, http.MethodGet, "/activity/types", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var types []activity.TypeInfo
	require.NoError(s.T(), json.Unmarshal(body, &types))
	assert.Len(s.T(), types, len(fitness.ActivityTypes()))

	resp, _ = s.doRequest(ctx, http.MethodGet, "/no/such/path", "", nil)
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestActivity_LogRateLimited() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, token := s.newUserSession(ctx)
	for i := 0; i < testRateLimitPerMin; i++ {
		resp, body := s.doRequest(ctx, http.MethodPost, "/activity/log", token, activity.NewActivity{
			Type:     "cycling",
			Duration: float64(10 + i),
		})
		require.Equal(s.T(), http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, _ := s.doRequest(ctx, http.MethodPost, "/activity/log", token, activity.NewActivity{
		Type:     "cycling",
		Duration: 10,
	})
	assert.Equal(s.T(), http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(s.T(), resp.Header.Get("Retry-After"))

	// other users are not affected
	_, otherToken := s.newUserSession(ctx)
	resp, _ = s.doRequest(ctx, http.MethodPost, "/activity/log", otherToken, activity.NewActivity{
		Type:     "cycling",
		Duration: 10,
	})
	assert.Equal(s.T(), http.StatusCreated, resp.StatusCode)
}
