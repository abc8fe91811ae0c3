package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GREET_CONTENT", "GREET_THEME", "GREET_DARK_MODE", "GREET_DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3*time.Second, cfg.GetMessageDelay())
	assert.Equal(t, 5*time.Second, cfg.GetPhaseDelay())
	assert.Equal(t, 50*time.Millisecond, cfg.GetFrameInterval())
	assert.Equal(t, 18, cfg.Timing.TotalTaps)

	sc := cfg.SequencerConfig(7, 4)
	assert.Equal(t, 7, sc.IntroCount)
	assert.Equal(t, 4, sc.OutroCount)
	assert.Equal(t, 3000*time.Millisecond, sc.MessageDelay)
	assert.Equal(t, 18, sc.TotalTaps)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Timing.TotalTaps = 5
	cfg.UI.Theme = "dark"
	cfg.Seed = 99
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  phase_delay: 2s\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.GetPhaseDelay())
	assert.Equal(t, 3*time.Second, cfg.GetMessageDelay())
	assert.Equal(t, 18, cfg.Timing.TotalTaps)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "timing: ["},
		{"bad duration", "timing:\n  message_delay: soon\n"},
		{"negative duration", "timing:\n  phase_delay: -1s\n"},
		{"zero taps", "timing:\n  total_taps: 0\n"},
		{"bad theme", "ui:\n  theme: neon\n"},
		{"negative confetti", "timing:\n  confetti: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GREET_CONTENT sets content path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GREET_CONTENT", "/tmp/script.yaml")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/script.yaml", cfg.ContentPath)
	})

	t.Run("GREET_DARK_MODE wins over GREET_THEME", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GREET_THEME", "light")
		t.Setenv("GREET_DARK_MODE", "1")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("GREET_DEBUG toggles debug mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GREET_DEBUG", "true")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("unparsable GREET_DEBUG is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GREET_DEBUG", "maybe")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Logging.DebugMode)
	})
}

func TestLoggingConfig(t *testing.T) {
	lc := LoggingConfig{DebugMode: true, Level: "debug", JSONFormat: true, Categories: map[string]bool{"ui": false}}

	out := lc.ToLogging()
	assert.True(t, out.DebugMode)
	assert.True(t, out.JSONFormat)
	assert.Equal(t, "debug", out.Level)
	assert.Equal(t, map[string]bool{"ui": false}, out.Categories)
}
