// Package logging configures the process-wide zerolog logger for the bindoc
// tooling. The parsing core itself never logs.
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment overrides; they win over values passed to Configure.
const (
	EnvLogLevel   = "BINDOC_LOG_LEVEL"
	EnvLogNoColor = "BINDOC_LOG_NOCOLOR"
)

var configureOnce sync.Once

// Configure installs a console logger on stderr at the given level. Later
// calls are no-ops.
func Configure(level string) {
	configureOnce.Do(func() {
		if env := os.Getenv(EnvLogLevel); env != "" {
			level = env
		}
		out := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv(EnvLogNoColor) != "",
		}
		log.Logger = zerolog.New(out).
			Level(ParseLevel(level)).
			With().Timestamp().Str("app", "bindoc").Logger()
	})
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
