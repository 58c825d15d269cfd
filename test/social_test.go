//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitstats/internal/social"
	"github.com/2beens/fitstats/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSocial_Stats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.social.setFailing("")
	s.social.takeAuths()
	_, token := s.newUserSession(ctx)

	resp, body := s.doRequest(ctx, http.MethodGet, "/social/stats", token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(body))

	var stats social.StatsView
	require.NoError(s.T(), json.Unmarshal(body, &stats))
	assert.Equal(s.T(), 3, stats.Friends)
	assert.Equal(s.T(), 1, stats.Challenges)
	assert.InDelta(s.T(), 1234.5, stats.Points, 0.0001)
	require.Len(s.T(), stats.RecentBadges, 3)
	assert.Equal(s.T(), "b1", stats.RecentBadges[0].Name)
	assert.Equal(s.T(), "b3", stats.RecentBadges[2].Name)

	auths := s.social.takeAuths()
	require.Len(s.T(), auths, 4)
	for _, a := range auths {
		assert.Equal(s.T(), "Bearer "+token, a)
	}
}

func (s *IntegrationTestSuite) TestSocial_StatsSourceFailure() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.social.setFailing("/gamification/points")
	defer s.social.setFailing("")
	_, token := s.newUserSession(ctx)

	resp, body := s.doRequest(ctx, http.MethodGet, "/social/stats", token, nil)
	require.Equal(s.T(), http.StatusBadGateway, resp.StatusCode, string(body))

	var errResp pkg.ErrorResponse
	require.NoError(s.T(), json.Unmarshal(body, &errResp))
	assert.Equal(s.T(), social.ErrSourceUnavailable.Error(), errResp.Message)
}

func (s *IntegrationTestSuite) TestSocial_StatsUnauthorized() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.social.takeAuths()
	resp, _ := s.doRequest(ctx, http.MethodGet, "/social/stats", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(s.T(), s.social.takeAuths())
}
