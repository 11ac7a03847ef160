package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestDefaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	require.Equal(t, "shortlink.db", cfg.DatabaseDSN)
	require.Equal(t, 10*time.Second, cfg.RefreshInterval)
}

func TestEnvOverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("SHORTLINK_API_URL", "https://sl.example.com")
	t.Setenv("SHORTLINK_REFRESH_INTERVAL", "30s")

	cfg := LoadConfig()
	require.Equal(t, "https://sl.example.com", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RefreshInterval)
	require.Equal(t, "shortlink.db", cfg.DatabaseDSN)
}

func TestJsonOverridesEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
  "api_base_url": "https://json.example.com",
  "refresh_interval": "5s"
}`), 0o600))

	withArgs(t, "-c", file)
	t.Setenv("SHORTLINK_API_URL", "https://env.example.com")

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RefreshInterval)
}

func TestFlagsOverrideEverything(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"api_base_url": "https://json.example.com"}`), 0o600))

	withArgs(t, "-c", file, "-a", "https://flag.example.com", "-i", "7", "-d", "other.db")
	t.Setenv("SHORTLINK_API_URL", "https://env.example.com")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
	require.Equal(t, 7*time.Second, cfg.RefreshInterval)
	require.Equal(t, "other.db", cfg.DatabaseDSN)
}
