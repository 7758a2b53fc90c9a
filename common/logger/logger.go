package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"log"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	currentLevel = ERROR
	sink         = zap.NewNop()
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func (s LogLevel) zapLevel() zapcore.Level {
	switch s {
	case ERROR:
		return zapcore.ErrorLevel
	case WARN:
		return zapcore.WarnLevel
	case INFO:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func init() {
	discardAll()
}

func discardAll() {
	Error = log.New(io.Discard, "", 0)
	Warn = log.New(io.Discard, "", 0)
	Info = log.New(io.Discard, "", 0)
	Debug = log.New(io.Discard, "", 0)
	Trace = log.New(io.Discard, "", 0)
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}

// Initialize routes the leveled loggers to a zap console logger. Levels above
// logLevel stay silent.
func Initialize(logLevel LogLevel) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel.zapLevel())
	config.DisableStacktrace = true

	built, err := config.Build()
	if err != nil {
		log.Printf("Could not initialize loggers: %s", err)
		return
	}
	InitializeWith(built, logLevel)
	Info.Printf("Initialized loggers: '%s'", logLevel.String())
}

// InitializeWith is Initialize for a caller supplied zap logger.
func InitializeWith(zapLogger *zap.Logger, logLevel LogLevel) {
	sink = zapLogger
	currentLevel = logLevel
	discardAll()

	if logLevel >= ERROR {
		Error = stdLogAt(zapLogger, zapcore.ErrorLevel)
	}
	if logLevel >= WARN {
		Warn = stdLogAt(zapLogger, zapcore.WarnLevel)
	}
	if logLevel >= INFO {
		Info = stdLogAt(zapLogger, zapcore.InfoLevel)
	}
	if logLevel >= DEBUG {
		Debug = stdLogAt(zapLogger, zapcore.DebugLevel)
	}
	if logLevel >= TRACE {
		Trace = stdLogAt(zapLogger.Named("trace"), zapcore.DebugLevel)
	}
}

func stdLogAt(zapLogger *zap.Logger, level zapcore.Level) *log.Logger {
	stdLogger, err := zap.NewStdLogAt(zapLogger, level)
	if err != nil {
		log.Printf("Could not create %s logger: %s", level, err)
		return log.New(io.Discard, "", 0)
	}
	return stdLogger
}

func Sync() {
	_ = sink.Sync()
}
