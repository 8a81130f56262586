package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DB_ADAPTER", "memory")

	c, err := New()
	require.NoError(t, err)
	require.Equal(t, "8080", c.Port)
	require.Equal(t, "HS256", c.JwtAlgorithm)
	require.Equal(t, 30, c.AccessTokenExpireMinutes)
}

func TestNew_InvalidTTL(t *testing.T) {
	t.Setenv("DB_ADAPTER", "memory")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "zero")

	_, err := New()
	require.Error(t, err)

	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "-5")
	_, err = New()
	require.Error(t, err)
}

func TestNew_InvalidAlgorithm(t *testing.T) {
	t.Setenv("DB_ADAPTER", "memory")
	t.Setenv("JWT_ALGORITHM", "RS256")

	_, err := New()
	require.Error(t, err)
}

func TestNew_ProductionRefusesDefaultSecret(t *testing.T) {
	t.Setenv("DB_ADAPTER", "memory")
	t.Setenv("ENV", "production")

	_, err := New()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	_, err = New()
	require.NoError(t, err)
}

func TestBuildPostgresDSN(t *testing.T) {
	t.Run("explicit DSN wins", func(t *testing.T) {
		c := &Config{PostgresDSN: "postgres://u:p@h:5432/d"}
		dsn, err := c.BuildPostgresDSN()
		require.NoError(t, err)
		require.Equal(t, "postgres://u:p@h:5432/d", dsn)
	})

	t.Run("assembled from parts", func(t *testing.T) {
		c := &Config{
			PostgresHost:     "db",
			PostgresUser:     "authd",
			PostgresPassword: "pw",
			PostgresDB:       "authd",
		}
		dsn, err := c.BuildPostgresDSN()
		require.NoError(t, err)
		require.Equal(t, "host=db port=5432 user=authd dbname=authd sslmode=disable password=pw", dsn)
	})

	t.Run("missing host", func(t *testing.T) {
		c := &Config{PostgresUser: "authd", PostgresDB: "authd"}
		_, err := c.BuildPostgresDSN()
		require.Error(t, err)
	})
}
