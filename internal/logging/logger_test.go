package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLog(t *testing.T, dir string, cat Category) string {
	t.Helper()
	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, "logs", date+"_"+string(cat)+".log"))
	require.NoError(t, err)
	return string(data)
}

func TestInitialize_DebugModeWritesCategoryFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, Config{DebugMode: true, Level: "debug"}))
	t.Cleanup(CloseAll)

	SequencerDebug("entered %s", "balloons")
	Get(CategoryUI).With(zap.String("run", "abc")).Debug("tap %d", 3)
	CloseAll()

	assert.Contains(t, readLog(t, dir, CategorySequencer), "entered balloons")
	ui := readLog(t, dir, CategoryUI)
	assert.Contains(t, ui, "tap 3")
	assert.Contains(t, ui, "abc")
	assert.Contains(t, readLog(t, dir, CategoryBoot), "logging initialized")
}

func TestInitialize_ProductionModeIsSilent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, Config{DebugMode: false}))
	t.Cleanup(CloseAll)

	Boot("should not be written")
	_, err := os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err), "logs dir must not exist in production mode")
	assert.False(t, IsDebugMode())
}

func TestInitialize_DebugRequiresDir(t *testing.T) {
	err := Initialize("", Config{DebugMode: true})
	assert.Error(t, err)
	CloseAll()
	require.NoError(t, Initialize("", Config{}))
}

func TestCategoryFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, Config{
		DebugMode:  true,
		Categories: map[string]bool{"ui": false},
	}))
	t.Cleanup(CloseAll)

	assert.False(t, IsCategoryEnabled(CategoryUI))
	assert.True(t, IsCategoryEnabled(CategoryContent), "unlisted categories default on")
}

func TestLevelFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, Config{DebugMode: true, Level: "warn", JSONFormat: true}))
	t.Cleanup(CloseAll)

	ContentWarn("reload failed")
	Content("reloaded")
	CloseAll()

	out := readLog(t, dir, CategoryContent)
	assert.Contains(t, out, "reload failed")
	assert.False(t, strings.Contains(out, "\"reloaded\""))
	assert.Contains(t, out, "\"cat\":\"content\"")
}

func TestTimerThreshold(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, Config{DebugMode: true, Level: "debug"}))
	t.Cleanup(CloseAll)

	timer := StartTimer(CategoryBoot, "load script")
	time.Sleep(5 * time.Millisecond)
	elapsed := timer.StopWithThreshold(time.Nanosecond)
	assert.Greater(t, elapsed, time.Duration(0))
	CloseAll()

	assert.Contains(t, readLog(t, dir, CategoryBoot), "load script took")
}
