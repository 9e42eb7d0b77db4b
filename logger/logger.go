// Package logger provides structured logging with an optional Sentry
// breadcrumb/error sink, adapted from the magda-api reference
// (internal/logger): plain log.Printf output plus best-effort
// reporting when a DSN is configured, never required.
package logger

import (
	"log"

	"github.com/getsentry/sentry-go"
)

// Fields is a structured set of log fields.
type Fields map[string]interface{}

// Info logs an informational message with structured fields.
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %v", msg, fields)
	breadcrumb(sentry.LevelInfo, msg, fields)
}

// Warn logs a warning message with structured fields.
func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %v", msg, fields)
	breadcrumb(sentry.LevelWarning, msg, fields)
}

// Error logs an error with structured fields and reports it to Sentry
// when configured.
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %v", msg, err, fields)
	if hub := sentry.CurrentHub(); hub != nil && hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for k, v := range fields {
				scope.SetContext(k, map[string]interface{}{"value": v})
			}
			hub.CaptureException(err)
		})
	}
}

func breadcrumb(level sentry.Level, msg string, fields Fields) {
	hub := sentry.CurrentHub()
	if hub == nil || hub.Client() == nil {
		return
	}
	data := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:     "default",
		Category: "log",
		Message:  msg,
		Data:     data,
		Level:    level,
	})
}
