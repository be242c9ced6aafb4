// Package logging holds the application logger.
package logging

import (
	"fmt"
	"strings"

	"github.com/handiism/festival-bands/internal/festival"
	"github.com/sirupsen/logrus"
)

// Log is the shared logger.
var Log = logrus.New()

// SetLogLevel sets the level of Log from its name.
// Accepted: debug, info, warn/warning, error, fatal.
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info", "":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("bad log level %q", level)
	}
	return nil
}

// Progress returns a loader callback that writes events to logger.
// Verbose events are logged at debug level.
func Progress(logger *logrus.Logger) func(festival.ProgressEvent) {
	return func(event festival.ProgressEvent) {
		entry := logger.WithField("level_hint", event.Level.String())
		switch event.Level {
		case festival.LevelVerbose:
			entry.Debug(event.Message)
		case festival.LevelWarning:
			entry.Warn(event.Message)
		case festival.LevelError:
			entry.Error(event.Message)
		default:
			entry.Info(event.Message)
		}
	}
}
