package logging

import (
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger = zap.SugaredLogger

var (
	globalLogger *Logger
	setupOnce    sync.Once
)

// Setup builds the process-wide logger. The level defaults to info and can
// be overridden with the TRINITY_LOG_LEVEL environment variable.
func Setup() {
	loggerConfig := zap.NewProductionConfig()
	// Change timestamp key name
	loggerConfig.EncoderConfig.TimeKey = "timestamp"
	// Use a human readable time format
	loggerConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(
		time.RFC3339,
	)

	if lvl := os.Getenv("TRINITY_LOG_LEVEL"); lvl != "" {
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			log.Fatalf("error configuring logger: %s", err)
		}
		loggerConfig.Level.SetLevel(level)
	}

	l, err := loggerConfig.Build()
	if err != nil {
		log.Fatal(err)
	}

	// Store the "sugared" version of the logger
	globalLogger = l.Sugar()
}

// GetLogger returns the shared logger, initializing it with defaults on
// first use so library callers never see a nil logger.
func GetLogger() *Logger {
	setupOnce.Do(func() {
		if globalLogger == nil {
			Setup()
		}
	})
	return globalLogger
}

// GetDesugaredLogger returns the structured form of the shared logger.
func GetDesugaredLogger() *zap.Logger {
	return GetLogger().Desugar()
}
