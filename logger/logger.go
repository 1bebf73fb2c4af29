package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AppLogger *zap.SugaredLogger = zap.NewNop().Sugar()

	logLevel    string
	appLogPath  string
	initialized bool
)

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitGlobalLoggers (re)builds the application logger. Entries go to the
// app log file and to stderr; if the file cannot be opened only stderr is used.
func InitGlobalLoggers(logPath, level string) error {
	level = strings.ToUpper(level)
	if level == "" {
		level = "INFO"
	}
	if initialized && logPath == appLogPath && level == logLevel {
		return nil
	}
	if initialized {
		_ = AppLogger.Sync()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	actualPath := "(stderr only)"
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0750); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create app log directory %s: %v. Logging to stderr only.\n", filepath.Dir(logPath), err)
		} else {
			cfg.OutputPaths = append(cfg.OutputPaths, logPath)
			actualPath = logPath
		}
	}

	base, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building zap logger: %w", err)
	}
	AppLogger = base.Named("graphdb").Sugar()
	logLevel = level
	appLogPath = logPath

	if !initialized {
		AppLogger.Infof("App logger initialized. Log level: %s. Output file: %s", logLevel, actualPath)
	}
	initialized = true
	return nil
}

func Info(format string, v ...interface{}) {
	AppLogger.Infof(format, v...)
}

func Debug(format string, v ...interface{}) {
	AppLogger.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	AppLogger.Warnf(format, v...)
}

func Error(format string, v ...interface{}) {
	AppLogger.Errorf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	AppLogger.Fatalf(format, v...)
}

// With returns a child logger carrying the given key/value pairs.
func With(args ...interface{}) *zap.SugaredLogger {
	return AppLogger.With(args...)
}

func CloseLogFiles() {
	if initialized {
		AppLogger.Info("Closing app log.")
		_ = AppLogger.Sync()
	}
	initialized = false
}
