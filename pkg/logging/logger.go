package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

// ZapLogger wraps zap and merges request-scoped fields stored in the context
// into every entry.
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(level zapcore.Level) (*ZapLogger, error) {
	s := defaultSettings(zap.NewAtomicLevelAt(level))
	logger, err := s.config.Build(s.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &ZapLogger{logger: logger}, nil
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

// WithContextFields returns a context carrying the given fields in addition
// to any fields already stored.
func WithContextFields(ctx context.Context, fields ...zap.Field) context.Context {
	merged := make([]zap.Field, 0, len(fields))
	merged = append(merged, contextFields(ctx)...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func contextFields(ctx context.Context) []zap.Field {
	fields, ok := ctx.Value(ctxFieldsKey{}).([]zap.Field)
	if !ok {
		return nil
	}
	return fields
}

func (l *ZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Debug(msg, append(contextFields(ctx), fields...)...)
}

func (l *ZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Info(msg, append(contextFields(ctx), fields...)...)
}

func (l *ZapLogger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Warn(msg, append(contextFields(ctx), fields...)...)
}

func (l *ZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Error(msg, append(contextFields(ctx), fields...)...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync() //nolint:wrapcheck // unnecessary
}
