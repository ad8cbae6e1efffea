// Package logging provides structured logging for entitymap using zerolog.
// Console output is used when stderr is a terminal, JSON otherwise.
//
// The CLI builds its logger from flags with NewLoggerFromConfig; library
// callers get Default, configured from the environment:
//
//	ENTITYMAP_LOG_LEVEL or LOG_LEVEL    trace, debug, info, warn, error
//	ENTITYMAP_LOG_FORMAT or LOG_FORMAT  auto, console, json
//	NO_COLOR                            disables console colors
//
// Components that receive a context log through FromContextOr, so a
// logger attached with WithLogger and tagged with WithOperation follows a
// request from the dashboard client down to the transport.
package logging

import (
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Nop discards everything.
var Nop = zerolog.Nop()

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	logger := NewLoggerFromConfig(ConfigFromEnv())
	defaultLogger.Store(&logger)
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger, including zerolog's global
// log.Logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
	log.Logger = logger
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event {
	return Default().Debug()
}

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event {
	return Default().Warn()
}

// ConfigFromEnv reads logger settings from the environment. The
// ENTITYMAP_ variables win over the generic ones.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if level := lookupEnv("ENTITYMAP_LOG_LEVEL", "LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := lookupEnv("ENTITYMAP_LOG_FORMAT", "LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

func lookupEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
