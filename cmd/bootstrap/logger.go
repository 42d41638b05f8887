package bootstrap

import (
	"log/slog"

	"football-field-booking/internal/handler/middleware"
	"football-field-booking/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}

// NewFxEventLogger routes the container's own lifecycle events through zap.
func NewFxEventLogger(cfg config.Config) fxevent.Logger {
	zl, err := newZap(cfg)
	if err != nil {
		return fxevent.NopLogger
	}
	l := &fxevent.ZapLogger{Logger: zl}
	if !cfg.IsProduction() {
		l.UseLogLevel(zap.DebugLevel)
	}
	return l
}

func newZap(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
