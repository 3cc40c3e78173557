// Package logging configures the zerolog logger shared by the SDK's client
// packages. The level comes from IROHA_LOG_LEVEL (default "info"); output is
// stderr. Applications embedding the SDK can replace the base logger with
// SetBase before constructing clients.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the SDK logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to os.Stderr)
}

var (
	mutex sync.RWMutex
	once  sync.Once
	base  zerolog.Logger
)

// Configure initialises the SDK logger exactly once.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if cfg.Level != "" {
			if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
				level = parsed
			}
		} else if env := os.Getenv("IROHA_LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}

		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}

		mutex.Lock()
		base = zerolog.New(writer).Level(level).With().
			Timestamp().
			Str("component", "iroha-sdk").
			Logger()
		mutex.Unlock()
	})
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	Configure(Config{})
	mutex.RLock()
	defer mutex.RUnlock()
	return base
}

// SetBase replaces the SDK logger, for applications that carry their own.
func SetBase(logger zerolog.Logger) {
	Configure(Config{})
	mutex.Lock()
	base = logger
	mutex.Unlock()
}

// With returns a logger tagged with the given subsystem.
func With(subsystem string) zerolog.Logger {
	return Base().With().Str("subsystem", subsystem).Logger()
}
