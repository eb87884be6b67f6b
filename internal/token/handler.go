package token

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/jwt_generator"
	"beauty-base-api/pkg/logger"
	"beauty-base-api/pkg/server"
)

type handler struct {
	jwtGenerator jwt_generator.JwtGenerator
	validate     *validator.Validate
}

func NewHandler(jwtGenerator jwt_generator.JwtGenerator) server.Handler {
	return &handler{
		jwtGenerator: jwtGenerator,
		validate:     validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/jwt", h.IssueToken)
}

// IssueToken signs a session token for the email in the body. The email is
// not checked against any user record.
func (h *handler) IssueToken(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "issueToken")

	var payload TokenPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"token identity must be a valid email",
			zap.Error(err),
		).SetSeverity(zap.WarnLevel)
	}

	accessToken, expiresAt, err := h.jwtGenerator.GenerateToken(payload.Email)
	if err != nil {
		return cerror.ErrorGenerateAccessToken.WithFields(zap.Error(err))
	}

	log.Infow(logger.EventFinishedSuccessfully, "expiresAt", expiresAt)
	return ctx.
		Status(fiber.StatusOK).
		JSON(&Token{Token: accessToken})
}
