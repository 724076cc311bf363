package log

import "context"

// Logger is the logging interface shared by every package in this module.
// All methods are context-first so call sites keep a uniform shape.
type Logger interface {
	Debug(ctx context.Context, msg string)
	Debugf(ctx context.Context, format string, args ...interface{})
	Info(ctx context.Context, msg string)
	Infof(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, msg string)
	Warnf(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, msg string)
	Errorf(ctx context.Context, format string, args ...interface{})
	Fatal(ctx context.Context, msg string)
	Fatalf(ctx context.Context, format string, args ...interface{})
}
