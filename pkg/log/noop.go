package log

import "context"

type noopLogger struct{}

// NewNoop returns a Logger that discards everything. Intended for tests.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(ctx context.Context, args ...any) {}

func (noopLogger) Debugf(ctx context.Context, template string, args ...any) {}

func (noopLogger) Info(ctx context.Context, args ...any) {}

func (noopLogger) Infof(ctx context.Context, template string, args ...any) {}

func (noopLogger) Warn(ctx context.Context, args ...any) {}

func (noopLogger) Warnf(ctx context.Context, template string, args ...any) {}

func (noopLogger) Error(ctx context.Context, args ...any) {}

func (noopLogger) Errorf(ctx context.Context, template string, args ...any) {}

func (noopLogger) Fatal(ctx context.Context, args ...any) {}

func (noopLogger) Fatalf(ctx context.Context, template string, args ...any) {}
