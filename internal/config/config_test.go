package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "directory-service", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.FixturesPath)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "test")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("USER_FIXTURES", "/tmp/users.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, "/tmp/users.json", cfg.FixturesPath)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad int", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "twelve")
		_, err := Load()
		require.Error(t, err)
	})
}
