package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuestCartTTLDefault(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cfg.GuestCartTTL)
}

func TestGuestCartTTLFromEnv(t *testing.T) {
	t.Setenv("GUEST_CART_TTL_HOURS", "48")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 48*time.Hour, cfg.GuestCartTTL)
}

func TestGuestCartTTLIgnoresMalformedValue(t *testing.T) {
	t.Setenv("GUEST_CART_TTL_HOURS", "two days")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cfg.GuestCartTTL)
}
