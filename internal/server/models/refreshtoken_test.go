package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Expired(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tok := &RefreshToken{Expires: now}

	assert.False(t, tok.Expired(now))
	assert.False(t, tok.Expired(now.Add(-time.Second)))
	assert.True(t, tok.Expired(now.Add(time.Second)))
}
