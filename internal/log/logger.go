// Package log wraps slog with a component field so every line can be traced
// back to the subsystem that emitted it.
package log

import (
	"log/slog"
	"os"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentStorage = "storage"
	ComponentReport  = "report"
)

// Common field names for structured logging.
const (
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldPeriod        = "period"
	FieldCategory      = "category"
	FieldAmountCents   = "amount_cents"
	FieldTransactionID = "transaction_id"
	FieldCount         = "count"
)

// Logger is a slog.Logger that stamps a component on every record.
type Logger struct {
	*slog.Logger
	component string
}

// New builds a text-handler logger at the given level, tagged with component.
func New(level slog.Level, component string) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// WithComponent returns a logger for a different subsystem sharing the same
// handler.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs the logger as the process-wide slog default, so
// packages logging through slog directly inherit the handler.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
