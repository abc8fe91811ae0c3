// Package logging provides config-driven categorized file logging for greet.
// Logs are written to <dir>/logs/ with one file per category, and only while
// debug_mode is on: the terminal belongs to the greeting, so nothing is ever
// written to stdout or stderr from here.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config and content loading
	CategorySequencer Category = "sequencer" // Phase transitions and timers
	CategoryContent   Category = "content"   // Script loading and hot reload
	CategoryUI        Category = "ui"        // Input handling and rendering
)

// Config controls which loggers write and how.
type Config struct {
	DebugMode  bool
	Level      string
	Categories map[string]bool
	JSONFormat bool
}

// Logger is a printf-style logger bound to one category. The zero-cost
// no-op form is returned whenever the category is disabled.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	config    Config
	configMu  sync.RWMutex
	level     = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Initialize sets up the logs directory under dir. It is a silent no-op when
// cfg.DebugMode is false. Calling it again replaces the previous setup.
func Initialize(dir string, cfg Config) error {
	CloseAll()

	configMu.Lock()
	config = cfg
	configMu.Unlock()

	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)

	if !cfg.DebugMode {
		logsDir = ""
		return nil
	}
	if dir == "" {
		return fmt.Errorf("log directory required in debug mode")
	}

	logsDir = filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== greet logging initialized ===")
	boot.Info("Logs directory: %s", logsDir)
	boot.Info("Log level: %s", lvl)
	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return config.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()

	if !config.DebugMode {
		return false
	}
	if config.Categories == nil {
		return true
	}
	enabled, exists := config.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

func nop(category Category) *Logger {
	return &Logger{category: category, sugar: zap.NewNop().Sugar()}
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) || logsDir == "" {
		return nop(category)
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nop(category)
	}

	configMu.RLock()
	jsonFormat := config.JSONFormat
	configMu.RUnlock()

	var enc zapcore.Encoder
	if jsonFormat {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(file), level)

	l := &Logger{
		category: category,
		file:     file,
		sugar:    zap.New(core).With(zap.String("cat", string(category))).Sugar(),
	}
	loggers[category] = l
	return l
}

// With returns a child logger carrying extra structured fields, e.g. a run ID.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		category: l.category,
		file:     l.file,
		sugar:    l.sugar.Desugar().With(fields...).Sugar(),
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// CloseAll flushes and closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		_ = l.sugar.Sync()
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }

func SequencerDebug(format string, args ...interface{}) { Get(CategorySequencer).Debug(format, args...) }

func Content(format string, args ...interface{})     { Get(CategoryContent).Info(format, args...) }
func ContentWarn(format string, args ...interface{}) { Get(CategoryContent).Warn(format, args...) }

func UIDebug(format string, args ...interface{}) { Get(CategoryUI).Debug(format, args...) }

// =============================================================================
// TIMING HELPERS
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
