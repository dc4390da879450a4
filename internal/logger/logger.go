package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger. Production profile everywhere except
// development environments.
func Init(env string) error {
	var logger *zap.Logger
	var err error

	switch env {
	case "development", "dev", "local":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
