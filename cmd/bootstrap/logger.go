package bootstrap

import (
	"log/slog"

	"session-booking/internal/handler/middleware"
	"session-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(requestLogger *middleware.Logger) *slog.Logger {
	return requestLogger.GetSlogLogger()
}
