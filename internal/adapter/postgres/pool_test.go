package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawoodjaved5/soventure-project/internal/config"
)

func TestPoolConfig_AppliesSettings(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:              "postgres://u:p@db.internal:5432/app?sslmode=disable",
		MaxConns:         8,
		MinConns:         2,
		MaxConnLifetime:  time.Hour,
		MaxConnIdleTime:  10 * time.Minute,
		StatementTimeout: 15 * time.Second,
		ApplicationName:  "soventure-api",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnIdleTime)
	assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
	assert.Equal(t, "app", cfg.ConnConfig.Database)
	assert.Equal(t, "soventure-api", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "15000", cfg.ConnConfig.RuntimeParams["statement_timeout"])
}

func TestPoolConfig_DSNParamsWin(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:              "postgres://u:p@localhost:5432/app?application_name=worker&statement_timeout=500",
		StatementTimeout: 15 * time.Second,
		ApplicationName:  "soventure-api",
	})
	require.NoError(t, err)

	assert.Equal(t, "worker", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "500", cfg.ConnConfig.RuntimeParams["statement_timeout"])
}

func TestPoolConfig_MinConnsCappedByMax(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:      "postgres://u:p@localhost:5432/app",
		MaxConns: 3,
		MinConns: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), cfg.MinConns)
}

func TestPoolConfig_InvalidDSN(t *testing.T) {
	t.Parallel()

	_, err := poolConfig(config.DatabaseConfig{DSN: "postgres://u:p@localhost:notaport/app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse DSN")
}
