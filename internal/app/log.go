package app

import (
	"fmt"
	"time"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Log adds a new log message to the log buffer and mirrors it to the
// structured logger.
func (a *App) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	a.LogMessages = append(a.LogMessages, LogMessage{
		Time:    a.now(),
		Level:   level,
		Message: message,
	})
	// Keep only last MaxLogMessages messages
	if len(a.LogMessages) > config.MaxLogMessages {
		a.LogMessages = a.LogMessages[len(a.LogMessages)-config.MaxLogMessages:]
	}

	switch level {
	case "ERROR":
		a.Logger.Error(message)
	case "WARN":
		a.Logger.Warn(message)
	default:
		a.Logger.Info(message)
	}
}

// LogInfo logs an informational message.
func (a *App) LogInfo(format string, args ...any) {
	a.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (a *App) LogWarn(format string, args ...any) {
	a.Log("WARN", format, args...)
}

// LogError logs an error message.
func (a *App) LogError(format string, args ...any) {
	a.Log("ERROR", format, args...)
}
