package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	friendsPath    = "/social/friends"
	challengesPath = "/social/challenges"
	pointsPath     = "/gamification/points"
	badgesPath     = "/gamification/badges"
)

// Client reads the four social sources. The credential is forwarded as a
// bearer token on every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Friends(ctx context.Context, credential string) ([]Friend, error) {
	var friends []Friend
	if err := c.getJSON(ctx, friendsPath, credential, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (c *Client) Challenges(ctx context.Context, credential string) ([]Challenge, error) {
	var challenges []Challenge
	if err := c.getJSON(ctx, challengesPath, credential, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (c *Client) Points(ctx context.Context, credential string) (*Points, error) {
	var points Points
	if err := c.getJSON(ctx, pointsPath, credential, &points); err != nil {
		return nil, err
	}
	return &points, nil
}

func (c *Client) Badges(ctx context.Context, credential string) ([]Badge, error) {
	var badges []Badge
	if err := c.getJSON(ctx, badgesPath, credential, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func (c *Client) getJSON(ctx context.Context, path, credential string, target any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "social.client.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	span.SetAttributes(attribute.Int("status", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
