package config

import "greetcard/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn, error
	DebugMode  bool            `yaml:"debug_mode"`           // Master toggle - false = no logging
	JSONFormat bool            `yaml:"json_format"`          // Structured JSON lines instead of console text
	Dir        string          `yaml:"dir"`                  // Logs go to <dir>/logs
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// ToLogging converts to the logging package's settings.
func (c *LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Categories: c.Categories,
		JSONFormat: c.JSONFormat,
	}
}
