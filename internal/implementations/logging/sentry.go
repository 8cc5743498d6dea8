package logging

import (
	"context"
	"errors"
	"pushreminder/internal/core/domain/logging"

	"github.com/getsentry/sentry-go"
)

// SentryLogger forwards every record to the wrapped logger and additionally
// reports error level records to Sentry.
type SentryLogger struct {
	logging.Logger
	hub *sentry.Hub
}

func NewSentryLogger(log logging.Logger, hub *sentry.Hub) *SentryLogger {
	return &SentryLogger{Logger: log, hub: hub}
}

func (l *SentryLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.Logger.Error(ctx, msg, entries...)

	hub := l.hub
	if ctxHub := sentry.GetHubFromContext(ctx); ctxHub != nil {
		hub = ctxHub
	}
	if hub == nil {
		return
	}

	err := errors.New(msg)
	hub.WithScope(func(scope *sentry.Scope) {
		extra := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			if entryErr, ok := e.Value.(error); ok && e.Key == "err" {
				err = entryErr
				continue
			}
			extra[e.Key] = e.Value
		}
		scope.SetExtras(extra)
		hub.CaptureException(err)
	})
}
