// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"

	"cronbuilder/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is shared by every builder and validator created from the environment.
var Log = logrus.New()

// Init applies cfg to Log and records the settings builders will start from.
// Production and staging log JSON; other environments log text.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.WithError(err).WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	switch strings.ToLower(cfg.Environment) {
	case "production", "staging":
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Log.WithFields(logrus.Fields{
		"level":       level.String(),
		"environment": cfg.Environment,
		"validator":   ValidatorMode(cfg.Strict),
		"expression":  cfg.Expression,
	}).Info("Logger initialized")
}

// ForComponent returns an entry tagged with the component name.
func ForComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

// ValidatorMode names the token grammar in log fields.
func ValidatorMode(strict bool) string {
	if strict {
		return "strict"
	}
	return "lenient"
}
