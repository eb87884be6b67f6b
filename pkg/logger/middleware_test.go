//go:build unit

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInjectContext(t *testing.T) {
	ctx := context.Background()

	logProd, err := zap.NewProduction()
	require.NoError(t, err)

	log := logProd.Sugar()
	defer log.Sync() //nolint:errcheck

	ctx = InjectContext(ctx, log)

	logFromCtx := ctx.Value(ContextKey).(*zap.SugaredLogger)
	assert.Equal(t, log, logFromCtx)
}

func TestFromContext(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		logProd, err := zap.NewProduction()
		require.NoError(t, err)

		log := logProd.Sugar()
		defer log.Sync() //nolint:errcheck

		ctx := InjectContext(context.Background(), log)

		assert.Equal(t, log, FromContext(ctx))
	})

	t.Run("when context has no logger should return a new one", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestMiddleware(t *testing.T) {
	logProd, err := zap.NewProduction()
	require.NoError(t, err)

	app := fiber.New()
	app.Use(Middleware(logProd.Sugar()))
	app.Get("/", func(ctx *fiber.Ctx) error {
		_, isOk := ctx.Locals(ContextKey).(*zap.SugaredLogger)
		assert.True(t, isOk)

		log := WithEvent(ctx, "test")
		assert.Equal(t, log, FromContext(ctx.Context()))

		return ctx.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewLogger(t *testing.T) {
	for _, isAtRemote := range []bool{true, false} {
		log, err := NewLogger(isAtRemote)

		assert.NoError(t, err)
		assert.NotNil(t, log)
	}
}
