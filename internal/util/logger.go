package util

import "go.uber.org/zap"

// NewLogger builds a sugared zap logger, structured JSON in production and
// human-readable everywhere else.
func NewLogger(env string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if env == "production" {
		logger = zap.Must(zap.NewProduction()).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}
