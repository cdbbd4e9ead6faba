package log

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger = zap.NewNop()

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// Named returns a child logger for a subsystem.
func Named(name string) *zap.Logger {
	return Logger.Named(name)
}

// Sync flushes buffered log entries; call on exit.
func Sync() {
	_ = Logger.Sync()
}
