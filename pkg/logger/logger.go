package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Get returns the shared application logger (JSON to stdout, level from
// LOG_LEVEL).
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()

		level := os.Getenv("LOG_LEVEL")
		if level == "" {
			level = "info"
		}
		logLevel, err := logrus.ParseLevel(level)
		if err != nil {
			logLevel = logrus.InfoLevel
		}
		log.SetLevel(logLevel)

		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		log.SetOutput(os.Stdout)
	}

	return log
}
