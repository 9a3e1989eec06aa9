package logger

import "gitlab.com/aockit-2025.net/internal/adapter/logging"

var Logger = logging.NewZapLogger(false)

// Configure rebuilds the global logger, switching debug logging on or off.
func Configure(debug bool) {
	Logger = logging.NewZapLogger(debug)
}

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}
