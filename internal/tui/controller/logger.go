package controller

import (
	"folio/internal/tui/model"
	"folio/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogInfo logs an informational message through pkg/logging.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message. It respects the model's DebugMode flag.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogWarn logs a warning message.
func LogWarn(subsystem string, format string, a ...interface{}) {
	logging.Warn(subsystem, format, a...)
}

// LogError logs an error message together with the error that caused it.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}
