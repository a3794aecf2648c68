package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide sugared logger. Dev gets the console encoder,
// everything else gets production JSON with ISO8601 timestamps.
func New(appEnv string) (*zap.SugaredLogger, error) {
	if appEnv == "dev" {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// NewNop returns a logger that discards everything. For tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
