package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/cantotalk/aacboard-backend/internal/config"
)

// New builds the application logger. Production gets JSON lines, anything
// else a human-readable format.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Server.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
