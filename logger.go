package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var combatLogger *zap.Logger

// initLogger sets up the process logger. Debug mode switches to the console
// encoder and traces every targeting and clash decision.
func initLogger(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	combatLogger = logger
}

func closeLogger() {
	if combatLogger != nil {
		_ = combatLogger.Sync()
	}
}
