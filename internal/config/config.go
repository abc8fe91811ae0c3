package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"greetcard/internal/sequencer"

	"gopkg.in/yaml.v3"
)

// Config holds all greet configuration.
type Config struct {
	// Content
	ContentPath  string `yaml:"content_path"`  // empty = built-in script
	WatchContent bool   `yaml:"watch_content"` // hot reload content_path

	// Presentation
	UI UIConfig `yaml:"ui"`

	// Sequence timing
	Timing TimingConfig `yaml:"timing"`

	// Decoration seed; 0 picks a random one per run
	Seed uint64 `yaml:"seed"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// TimingConfig configures the sequencer. Durations are Go duration strings.
type TimingConfig struct {
	MessageDelay  string `yaml:"message_delay"`
	PhaseDelay    string `yaml:"phase_delay"`
	FrameInterval string `yaml:"frame_interval"`
	TotalTaps     int    `yaml:"total_taps"`
	Balloons      int    `yaml:"balloons"`
	Confetti      int    `yaml:"confetti"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:     "auto",
			AltScreen: true,
			Mouse:     true,
		},
		Timing: TimingConfig{
			MessageDelay:  "3s",
			PhaseDelay:    "5s",
			FrameInterval: "50ms",
			TotalTaps:     18,
			Balloons:      15,
			Confetti:      100,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   ".greet",
		},
	}
}

// DefaultPath returns the config file location: ./.greet/config.yaml when a
// project-local .greet directory exists, ~/.greet/config.yaml otherwise.
func DefaultPath() string {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".greet")
		if stat, err := os.Stat(local); err == nil && stat.IsDir() {
			return filepath.Join(local, "config.yaml")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".greet", "config.yaml")
	}
	return filepath.Join(home, ".greet", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("GREET_CONTENT"); path != "" {
		c.ContentPath = path
	}
	if theme := os.Getenv("GREET_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if os.Getenv("GREET_DARK_MODE") == "1" {
		c.UI.Theme = "dark"
	}
	if v := os.Getenv("GREET_DEBUG"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// Validate checks that timing values are usable.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"message_delay":  c.Timing.MessageDelay,
		"phase_delay":    c.Timing.PhaseDelay,
		"frame_interval": c.Timing.FrameInterval,
	} {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid timing.%s %q: %w", name, v, err)
		}
		if d <= 0 {
			return fmt.Errorf("timing.%s must be positive, got %s", name, v)
		}
	}
	if c.Timing.TotalTaps < 1 {
		return fmt.Errorf("timing.total_taps must be at least 1, got %d", c.Timing.TotalTaps)
	}
	if c.Timing.Balloons < 0 || c.Timing.Confetti < 0 {
		return fmt.Errorf("decoration counts must not be negative")
	}
	switch c.UI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme: %s (valid: auto, light, dark)", c.UI.Theme)
	}
	return nil
}

// GetMessageDelay returns the delay between intro/outro messages.
func (c *Config) GetMessageDelay() time.Duration {
	return parseDurationOr(c.Timing.MessageDelay, 3*time.Second)
}

// GetPhaseDelay returns how long the balloons and celebration phases last.
func (c *Config) GetPhaseDelay() time.Duration {
	return parseDurationOr(c.Timing.PhaseDelay, 5*time.Second)
}

// GetFrameInterval returns the animation frame period.
func (c *Config) GetFrameInterval() time.Duration {
	return parseDurationOr(c.Timing.FrameInterval, 50*time.Millisecond)
}

// SequencerConfig builds the sequencer configuration for a script with the
// given message counts.
func (c *Config) SequencerConfig(intro, outro int) sequencer.Config {
	return sequencer.Config{
		IntroCount:   intro,
		OutroCount:   outro,
		MessageDelay: c.GetMessageDelay(),
		PhaseDelay:   c.GetPhaseDelay(),
		TotalTaps:    c.Timing.TotalTaps,
	}
}

func parseDurationOr(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
