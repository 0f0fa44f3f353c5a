package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// Init configures the process-global zap logger for the given environment and
// level, and returns it. Production gets JSON output, everything else the
// development console encoder.
func Init(environment, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}

	lgr, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(lgr)
	return lgr, nil
}

// WithContext returns a context carrying the given logger.
func WithContext(ctx context.Context, lgr *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, lgr)
}

// FromContext returns the logger carried by the context, or the global logger
// when none is set.
func FromContext(ctx context.Context) *zap.Logger {
	if lgr, ok := ctx.Value(contextKey{}).(*zap.Logger); ok {
		return lgr
	}
	return zap.L()
}
