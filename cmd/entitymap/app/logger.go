package app

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/entitymap/pkg/logging"
)

// logLevels are the levels accepted from flags and the environment.
var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// Sources a log level can be taken from, highest precedence first.
const (
	levelFromFlag    = "--log-level"
	levelFromVerbose = "--verbose"
	levelFromQuiet   = "--quiet"
	levelFromEnv     = "environment"
	levelFromDefault = "default"
)

// logLevelChoice is the level entitymap logs at and where it came from.
type logLevelChoice struct {
	Level  string
	Source string
}

// NewLogger creates the CLI logger. The level is taken from --log-level,
// then -v/-q (both together mean warn), then ENTITYMAP_LOG_LEVEL or
// LOG_LEVEL, then info.
func NewLogger(config *Config) zerolog.Logger {
	choice := chooseLogLevel(config, os.Stderr)

	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:     choice.Level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: choice.Level == "debug" || choice.Level == "trace",
	})
	logger.Debug().
		Str("level", choice.Level).
		Str("source", choice.Source).
		Msg("log level selected")
	return logger
}

// chooseLogLevel applies the precedence described on NewLogger. Unusable
// settings are reported on warn and replaced with info.
func chooseLogLevel(config *Config, warn io.Writer) logLevelChoice {
	switch {
	case config.LogLevel != "":
		return logLevelChoice{Level: checkedLevel(config.LogLevel, levelFromFlag, warn), Source: levelFromFlag}
	case config.Verbose && config.Quiet:
		fmt.Fprintln(warn, "Warning: both --verbose and --quiet specified, using --quiet")
		return logLevelChoice{Level: "warn", Source: levelFromQuiet}
	case config.Verbose:
		return logLevelChoice{Level: "debug", Source: levelFromVerbose}
	case config.Quiet:
		return logLevelChoice{Level: "warn", Source: levelFromQuiet}
	case config.EnvLogLevel != "":
		return logLevelChoice{Level: checkedLevel(config.EnvLogLevel, levelFromEnv, warn), Source: levelFromEnv}
	default:
		return logLevelChoice{Level: "info", Source: levelFromDefault}
	}
}

func checkedLevel(level, source string, warn io.Writer) string {
	if v := validateLogLevel(level); v == level {
		return v
	}
	fmt.Fprintf(warn, "Warning: invalid log level %q from %s, using \"info\"\n", level, source)
	return "info"
}

// validateLogLevel returns level if valid, otherwise "info".
func validateLogLevel(level string) string {
	if slices.Contains(logLevels, level) {
		return level
	}
	return "info"
}
