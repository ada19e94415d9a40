package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ENCODING_JSON    = "json"
	ENCODING_CONSOLE = "console"
)

// Log is a no-op until a binary replaces it.
var Log = zap.NewNop()

// NewLogger builds a logger at level writing to outputs. Unknown levels fall back to info.
func NewLogger(level string, encoding string, outputs ...string) *zap.Logger {
	atomicLevel, err := zap.ParseAtomicLevel(level)

	if err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "timestamp"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	if encoding == ENCODING_CONSOLE {
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	return zap.Must(zap.Config{
		Level:             atomicLevel,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoder,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}.Build())
}
