package utils

import (
	"log"
	"sync"

	"cleanquote/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Handlers should prefer the request-scoped
// logger stored in the gin context.
var Logger *zap.Logger

var loggerOnce sync.Once

// NewLoggerConfig returns the zap config for the environment. An unparseable
// level keeps the environment default.
func NewLoggerConfig(production bool, level string) zap.Config {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil && level != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg
}

// InitializeLogger builds the global logger from the loaded configuration.
func InitializeLogger() {
	l, err := NewLoggerConfig(config.IsProduction(), config.AppConfig.LogLevel).Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = l
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if Logger == nil {
			InitializeLogger()
		}
	})
	return Logger
}
