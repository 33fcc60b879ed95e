package models

import "time"

// RefreshToken is an opaque rotating token; each successful refresh deletes
// the presented token and issues a new one.
type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return t.Expires.Before(now)
}
