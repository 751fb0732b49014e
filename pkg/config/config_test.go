package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New("nonexistent.env")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTPPort)
	require.Equal(t, int32(10), cfg.PostgresMaxConns)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, time.Duration(0), cfg.JWT.AccessTokenExpiry)
	require.Equal(t, "superadmin", cfg.Bootstrap.SuperAdminUsername)
	require.Equal(t, "survey.events", cfg.KafkaTopic)
	require.Equal(t, 30*time.Second, cfg.Proxy.Timeout)
	require.Equal(t, int64(52428800), cfg.Proxy.MaxBodyBytes)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("POSTGRES_DSN", "postgres://app:secret@db:5432/gesa")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY", "24h")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := config.New("nonexistent.env")
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.HTTPPort)
	require.Equal(t, "postgres://app:secret@db:5432/gesa", cfg.PostgresDSN)
	require.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}
