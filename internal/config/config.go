package config

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger builds the process logger. APP_ENV=production selects the JSON
// production encoder, LOG_LEVEL overrides the level.
func InitLogger() {
	var err error
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, perr := zapcore.ParseLevel(lvl)
		if perr != nil {
			log.Fatalf("Invalid LOG_LEVEL %q: %v", lvl, perr)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized")
}
