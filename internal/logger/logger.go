package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the process-wide JSON logger.
func New(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		log.Warnf("unknown log level %q, using info", level)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.JSONFormatter{})

	return log
}
