package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-photo-session/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "DEV", c.GetEnv())
	require.True(t, c.IsDev())
	require.Equal(t, "http://localhost:5500", c.GetAPIBaseURL())
	require.Equal(t, time.Duration(0), c.GetRequestTimeout())
	require.Equal(t, config.TokenStoreFile, c.GetTokenStore())
	require.Equal(t, "token", c.GetTokenKey())
	require.True(t, c.GetDevAPIEnabled())
	require.Equal(t, time.Hour, c.GetDevTokenExpiry())
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("TOKEN_STORE", "REDIS")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "PROD", c.GetEnv())
	require.False(t, c.IsDev())
	require.Equal(t, "https://api.example.com", c.GetAPIBaseURL())
	require.Equal(t, config.TokenStoreRedis, c.GetTokenStore())
	require.Equal(t, 3, c.GetRedisDB())

	origins := c.GetAllowedOrigins()
	require.True(t, origins.IsAllowedOrigin("https://a.example.com"))
	require.True(t, origins.IsAllowedOrigin("https://b.example.com"))
	require.False(t, origins.IsAllowedOrigin("https://c.example.com"))
}

func TestNew_UnknownTokenStoreFallsBackToFile(t *testing.T) {
	t.Setenv("TOKEN_STORE", "s3")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, config.TokenStoreFile, c.GetTokenStore())
}
