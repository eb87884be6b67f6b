package guard

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/jwt_generator"
	"beauty-base-api/pkg/logger"
)

const (
	IdentityKey  = "identity"
	bearerPrefix = "Bearer "
)

// Middleware rejects requests without a valid bearer token and stores the
// verified claims under IdentityKey for the next handler.
func Middleware(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorization := ctx.Get(fiber.HeaderAuthorization)
		if authorization == "" {
			return cerror.ErrorMissingAuthorization
		}

		if !strings.HasPrefix(authorization, bearerPrefix) {
			return cerror.ErrorInvalidToken.WithFields(
				zap.String("reason", "authorization header is not a bearer token"),
			)
		}

		rawToken := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
		if rawToken == "" {
			return cerror.ErrorInvalidToken.WithFields(
				zap.String("reason", "bearer token is empty"),
			)
		}

		claims, err := jwtGenerator.VerifyToken(rawToken)
		if err != nil {
			return cerror.ErrorInvalidToken.WithFields(zap.Error(err))
		}

		ctx.Locals(IdentityKey, claims)
		ctx.Locals(
			logger.ContextKey,
			logger.FromContext(ctx.Context()).With(zap.String("identity", claims.Email)),
		)
		return ctx.Next()
	}
}

// IdentityFromContext returns the claims stored by Middleware. The second
// value is false on routes the guard does not protect.
func IdentityFromContext(ctx *fiber.Ctx) (*jwt_generator.Claims, bool) {
	claims, isOk := ctx.Locals(IdentityKey).(*jwt_generator.Claims)
	return claims, isOk
}
