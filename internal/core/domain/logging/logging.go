// Package logging is the logging port used across the service. Adapters live
// in internal/implementations/logging.
package logging

import "context"

type LogEntry struct {
	Key   string
	Value interface{}
}

// Entry attaches a key/value pair to a record.
func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

// Source tags a record with the component that emitted it.
func Source(name string) LogEntry {
	return LogEntry{Key: "source", Value: name}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// Error logs err at error level using its text as the message and the error
// itself under "err". A nil err is not logged.
func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	if err == nil {
		return
	}
	log.Error(ctx, err.Error(), append([]LogEntry{Entry("err", err)}, entries...)...)
}
