package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitstats-session||"
	tokensSetKey     = "fitstats-sessions"
	tokenLength      = 40
)

var (
	ErrMissingToken    = errors.New("missing bearer token")
	ErrInvalidToken    = errors.New("invalid bearer token")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session is stored in redis (as JSON) under the session key of its token
type Session struct {
	UserID    string `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
}

func (s Session) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(time.Unix(s.CreatedAt, 0)) > ttl
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func encodeSession(s Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSession(raw string) (Session, error) {
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if s.UserID == "" {
		return Session{}, errors.New("decode session: user id empty")
	}
	return s, nil
}
