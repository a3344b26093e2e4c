package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"petstar/config"
)

func TestResetTokenIssuer_Issue(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{ResetTokenTTL: 24 * time.Hour}

	issuer := NewResetTokenIssuer(cfg)

	token := issuer.Issue("firulais@petstar.com")
	assert.NotNil(t, token)
	assert.Equal(t, "firulais@petstar.com", token.Email)

	// Token must be a well-formed UUID string.
	_, err := uuid.Parse(token.Token)
	assert.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.ExpiresAt, time.Minute)
	assert.False(t, token.Expired(time.Now()))

	// A token presented exactly at its expiry instant is still redeemable;
	// any instant past it is not.
	assert.False(t, token.Expired(token.ExpiresAt))
	assert.True(t, token.Expired(token.ExpiresAt.Add(time.Nanosecond)))

	// Two issued tokens never collide.
	other := issuer.Issue("firulais@petstar.com")
	assert.NotEqual(t, token.Token, other.Token)
}
