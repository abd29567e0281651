package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutCredentials(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("UNSPLASH_ACCESS_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Empty(t, cfg.Weather.APIKey)
	require.Empty(t, cfg.Photos.AccessKey)
	require.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	require.Equal(t, 3, cfg.Photos.PerPage)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://chat.example.com"]
weather:
  apiKey: from-file
  timeout: 3s
photos:
  accessKey: photo-file
trending:
  limit: 5
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	t.Setenv("UNSPLASH_ACCESS_KEY", "")
	t.Setenv("PHOTOS_TIMEOUT", "750ms")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "from-env", cfg.Weather.APIKey)
	require.Equal(t, 3*time.Second, cfg.Weather.Timeout)
	require.Equal(t, "photo-file", cfg.Photos.AccessKey)
	require.Equal(t, 750*time.Millisecond, cfg.Photos.Timeout)
	require.Equal(t, 5, cfg.Trending.Limit)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Weather.Timeout = 0
	require.EqualError(t, cfg.Validate(), "weather.timeout must be positive")

	cfg = defaultConfig()
	cfg.Trending.Redis.Enabled = true
	require.EqualError(t, cfg.Validate(), "trending.redis.addr cannot be empty when redis is enabled")

	cfg = defaultConfig()
	cfg.Photos.PerPage = 0
	require.Error(t, cfg.Validate())
}
