package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type PhotoLoggerInterface interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	Sync() error
}
type PhotoLogger struct {
	logger *zap.Logger
}

func NewPhotoLogger(level string, isDebug bool) (*PhotoLogger, error) {
	var config zap.Config
	if isDebug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	zaplogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &PhotoLogger{logger: zaplogger.With(zap.String("service", "Photo-Service"))}, nil
}

// NewNopLogger discards everything; used by tests and tools.
func NewNopLogger() *PhotoLogger {
	return &PhotoLogger{logger: zap.NewNop()}
}
func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "TRACE", "DEBUG":
		return zap.DebugLevel
	case "INFO":
		return zap.InfoLevel
	case "WARN":
		return zap.WarnLevel
	case "ERROR":
		return zap.ErrorLevel
	}
	return zap.InfoLevel
}
func (l *PhotoLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}
func (l *PhotoLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}
func (l *PhotoLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}
func (l *PhotoLogger) Error(msg string, fields ...zap.Field) {
	l.logger.Error(msg, fields...)
}
func (l *PhotoLogger) Fatal(msg string, fields ...zap.Field) {
	l.logger.Fatal(msg, fields...)
}
func (l *PhotoLogger) Sync() error {
	return l.logger.Sync()
}
