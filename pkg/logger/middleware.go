package logger

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextKey                = "logger"
	EventFinishedSuccessfully = "event successfully finished"
)

// Middleware stores a request scoped logger in the fiber locals, which fiber
// exposes through ctx.Context().Value as well.
func Middleware(logger *zap.SugaredLogger) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		requestLogger := logger.With(
			zap.String("requestId", uuid.New().String()),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		)
		ctx.Locals(ContextKey, requestLogger)
		return ctx.Next()
	}
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, isOk := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !isOk {
		l, _ := zap.NewProduction()
		logger = l.Sugar()
	}

	return logger
}

func InjectContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log) //nolint:staticcheck
}

// WithEvent tags the request logger with an event name and stores it back in
// the fiber locals so the error handler logs with the same fields.
func WithEvent(ctx *fiber.Ctx, eventName string) *zap.SugaredLogger {
	log := FromContext(ctx.Context()).
		With(zap.String("eventName", eventName))
	ctx.Locals(ContextKey, log)
	return log
}
