package config_test

import (
	"testing"
	"time"

	"katalog/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10<<20, cfg.MaxUploadBytes)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("TOKEN_TTL", "90m")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := config.Load(viper.New())
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load(viper.New())
	assert.ErrorContains(t, err, "JWT_SECRET must not be empty")
}
