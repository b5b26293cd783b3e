package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel type
type LogLevel int

// Log levels
const (
	INFO LogLevel = iota
	WARNING
	DEBUG
	ERROR
)

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(level string) LogLevel {
	switch level {
	case "info", "Info", "INFO":
		return INFO
	case "warning", "Warning", "WARNING":
		return WARNING
	case "debug", "Debug", "DEBUG":
		return DEBUG
	case "error", "Error", "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger struct
type Logger struct {
	logger   *zap.SugaredLogger
	logLevel LogLevel
}

// NewLogger creates a new logger instance
func NewLogger(level string) *Logger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Filtering happens in Logger itself, zap passes everything through
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	return &Logger{
		logger:   zap.Must(config.Build(zap.WithCaller(false))).Sugar(),
		logLevel: ParseLogLevel(level),
	}
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if l.logLevel <= INFO {
		l.logger.Info(msg)
	}
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	if l.logLevel <= WARNING {
		l.logger.Warn(msg)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if l.logLevel <= DEBUG {
		l.logger.Debug(msg)
	}
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if l.logLevel <= ERROR {
		l.logger.Error(msg)
	}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.logger.Sync()
}
