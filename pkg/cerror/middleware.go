package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"beauty-base-api/pkg/logger"
)

// Middleware is the fiber ErrorHandler. It logs the error with the request
// logger and answers with {"httpStatus": <code>}.
func Middleware(ctx *fiber.Ctx, err error) error {
	log := logger.FromContext(ctx.Context()).Desugar()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		log.Warn(fiberErr.Message, zap.Int("httpStatus", fiberErr.Code))
		return ctx.
			Status(fiberErr.Code).
			JSON(&CustomError{HttpStatusCode: fiberErr.Code})
	}

	var cerr *CustomError
	if !errors.As(err, &cerr) {
		cerr = ErrorUnexpected.WithFields(zap.Error(err))
	}

	log.With(cerr.LogFields...).Log(cerr.LogSeverity, cerr.LogMessage)
	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(cerr)
}
