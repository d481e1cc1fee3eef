package models

import "time"

// Session is the client's locally stored login: the bearer token together
// with the expiry decoded from it. ExpiresAt is informational only; the
// server decides whether the token is still accepted.
type Session struct {
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session's expiry is at or before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
