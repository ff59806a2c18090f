package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const defaultLevel = logrus.InfoLevel

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: defaultLevel,
	}

	return &logger
}

// SetLevel applies a textual level such as "debug" or "warn". An empty
// level keeps the default.
func SetLevel(logger *logrus.Logger, level string) error {
	if level == "" {
		logger.SetLevel(defaultLevel)
		return nil
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	logger.SetLevel(parsed)
	return nil
}
