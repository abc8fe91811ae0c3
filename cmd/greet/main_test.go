package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"greetcard/internal/config"
	"greetcard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Setenv("GREET_THEME", "")
	t.Setenv("GREET_CONTENT", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	file := config.DefaultConfig()
	file.UI.Theme = "light"
	file.Seed = 3
	if err := file.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := rootCmd.ParseFlags([]string{"--config", path, "--theme", "dark", "--no-alt-screen"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if err := loadConfig(rootCmd); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.UI.Theme != "dark" {
		t.Errorf("expected flag theme 'dark', got %q", cfg.UI.Theme)
	}
	if cfg.Seed != 3 {
		t.Errorf("expected file seed 3 to survive, got %d", cfg.Seed)
	}
	if cfg.UI.AltScreen {
		t.Error("expected --no-alt-screen to disable the alt screen")
	}
}

func TestTimelineCommand(t *testing.T) {
	out := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "timeline")

	for _, want := range []string{"Happy 18th Birthday!", "balloons", "celebration", "final", "tap"} {
		if !strings.Contains(out, want) {
			t.Errorf("timeline missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Stopped in") {
		t.Errorf("full run should reach final:\n%s", out)
	}
}

func TestTimelineStopsAtCake(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	timelineTaps = 3
	defer func() { timelineTaps = -1 }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runTimeline(cmd, nil); err != nil {
		t.Fatalf("runTimeline returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "Stopped in cake with 15 taps to go.") {
		t.Fatalf("expected cake stop notice, got:\n%s", buf.String())
	}
}

func TestScriptRaw(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	scriptRaw = true
	defer func() { scriptRaw = false }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runScript(cmd, nil); err != nil {
		t.Fatalf("runScript returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "# Happy 18th Birthday!") {
		t.Fatalf("expected Markdown title, got:\n%s", out)
	}
	if !strings.Contains(out, "18") {
		t.Error("expected the tap total in the cake prompt")
	}
}

func TestScriptRendered(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.UI.Theme = "light"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runScript(cmd, nil); err != nil {
		t.Fatalf("runScript returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Birthday") {
		t.Fatalf("rendered script lost its title:\n%s", buf.String())
	}
}

func TestScriptMissingContent(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.ContentPath = filepath.Join(t.TempDir(), "nope.yaml")

	if err := runScript(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected an error for a missing script file")
	}
}

func TestConfigInit(t *testing.T) {
	logger = zap.NewNop()
	configPath = filepath.Join(t.TempDir(), "nested", "config.yaml")
	defer func() { configPath = "" }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runConfigInit(cmd, nil); err != nil {
		t.Fatalf("runConfigInit failed: %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("config file was not written: %v", err)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if loaded.Timing.TotalTaps != 18 {
		t.Errorf("expected default total taps, got %d", loaded.Timing.TotalTaps)
	}

	// Second run keeps the file
	buf.Reset()
	if err := runConfigInit(cmd, nil); err != nil {
		t.Errorf("runConfigInit second run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "already exists") {
		t.Errorf("expected existing-file notice, got: %s", buf.String())
	}
}

func TestConfigInitRepairsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  total_taps: 0\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected the broken config to fail validation")
	}
	defer func() { configForce = false }()

	out := executeCommand(t, "--config", path, "config", "init", "--force")
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("expected write notice, got: %s", out)
	}
	if _, err := config.Load(path); err != nil {
		t.Errorf("config init --force left an invalid file: %v", err)
	}
}

func TestInitLoggingNamesDebugDir(t *testing.T) {
	cfg = config.DefaultConfig()
	cfg.Logging.Dir = t.TempDir()

	var buf bytes.Buffer
	if err := initLogging(&buf); err != nil {
		t.Fatalf("initLogging failed: %v", err)
	}
	logging.CloseAll()
	if buf.Len() != 0 {
		t.Errorf("expected no notice outside debug mode, got: %s", buf.String())
	}

	cfg.Logging.DebugMode = true
	if err := initLogging(&buf); err != nil {
		t.Fatalf("initLogging failed: %v", err)
	}
	logging.CloseAll()
	if !strings.Contains(buf.String(), filepath.Join(cfg.Logging.Dir, "logs")) {
		t.Errorf("expected the log directory in the notice, got: %s", buf.String())
	}

	// Leave logging disabled for the other tests.
	_ = logging.Initialize("", logging.Config{})
}

func TestNewModelUsesConfig(t *testing.T) {
	cfg = config.DefaultConfig()
	cfg.Seed = 42
	cfg.Timing.Balloons = 5

	script, err := loadScript()
	if err != nil {
		t.Fatalf("loadScript failed: %v", err)
	}
	seq := newSequencer(script)
	if got := seq.Config().IntroCount; got != len(script.Intro) {
		t.Errorf("expected intro count %d, got %d", len(script.Intro), got)
	}

	m := newModel(script)
	if m.State().Phase.String() != "intro" {
		t.Errorf("expected model to mount in intro, got %s", m.State().Phase)
	}
}

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return buf.String()
}
