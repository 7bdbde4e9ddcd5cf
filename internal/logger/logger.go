// Package logger wraps a process-wide zap logger. All log output goes
// to stderr so stdout stays clean for the PPM stream.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. Call Init before use.
var Log *zap.Logger

// Init configures the shared logger for console output on stderr
func Init() {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var err error
	Log, err = config.Build()
	if err != nil {
		panic(err)
	}
}
