package social

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	SourceFriends    = "friends"
	SourceChallenges = "challenges"
	SourcePoints     = "points"
	SourceBadges     = "badges"

	challengeStatusActive = "active"
	recentBadgesLimit     = 3
)

var (
	// ErrSourceUnavailable is the only error callers see when any of the
	// sources fails, the failing source is logged but not exposed.
	ErrSourceUnavailable = errors.New("Failed to load social statistics")
	ErrMissingCredential = errors.New("missing credential")
)

type StatsView struct {
	Friends      int     `json:"friends"`
	Challenges   int     `json:"challenges"`
	Points       float64 `json:"points"`
	RecentBadges []Badge `json:"recentBadges"`
}

type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type Challenge struct {
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
}

// Points payload, Total is nil when the source omits it.
type Points struct {
	Total *float64 `json:"total"`
}

// Friend entries are only counted, their shape is not interpreted.
type Friend = json.RawMessage

// SourceError carries the failing source, used for logs and metrics only.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("social source [%s]: %s", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// StatusError is returned for a non-2xx source response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Path, e.StatusCode)
}
