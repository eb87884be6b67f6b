package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

var (
	ErrorBadRequest = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorMissingAuthorization = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		LogMessage:     "authorization header is missing",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidToken = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		LogMessage:     "access token is malformed, expired or has a bad signature",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorForbidden = &CustomError{
		HttpStatusCode: fiber.StatusForbidden,
		LogMessage:     "identity in access token does not own the requested resource",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorServiceNotFound = &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		LogMessage:     "service not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorReviewNotFound = &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		LogMessage:     "review not found",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorGenerateAccessToken = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		LogMessage:     "error occurred while generate access token",
		LogSeverity:    zapcore.ErrorLevel,
	}

	ErrorUnexpected = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		LogMessage:     "unexpected error",
		LogSeverity:    zapcore.ErrorLevel,
	}
)
