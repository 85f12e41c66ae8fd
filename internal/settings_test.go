package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	unsetEnv(t, "PLAYTIME_CONFIG_DIR", "PLAYTIME_MIN_SESSION", "PLAYTIME_RECENT_DAYS", "PLAYTIME_LOG_LEVEL")

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "", settings.ConfigDir)
	assert.Equal(t, time.Second, settings.MinSession)
	assert.Equal(t, DefaultRecentDays, settings.RecentDays)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	t.Setenv("PLAYTIME_CONFIG_DIR", dir)
	t.Setenv("PLAYTIME_MIN_SESSION", "30s")
	t.Setenv("PLAYTIME_RECENT_DAYS", "14")
	t.Setenv("PLAYTIME_LOG_LEVEL", "debug")

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, settings.MinSession)
	assert.Equal(t, 14, settings.RecentDays)
	assert.Equal(t, LogLevelDebug, ParseLogLevel(settings.LogLevel))

	store, err := settings.Store()
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparseable duration", key: "PLAYTIME_MIN_SESSION", value: "soon"},
		{name: "negative duration", key: "PLAYTIME_MIN_SESSION", value: "-1s"},
		{name: "zero window", key: "PLAYTIME_RECENT_DAYS", value: "0"},
		{name: "non-numeric window", key: "PLAYTIME_RECENT_DAYS", value: "week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "PLAYTIME_MIN_SESSION", "PLAYTIME_RECENT_DAYS")
			t.Setenv(tt.key, tt.value)

			_, err := LoadSettings()
			assert.Error(t, err)
		})
	}
}

// unsetEnv removes keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
