//go:build unit

package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beauty-base-api/pkg/config"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})
}

func TestServer(t *testing.T) {
	t.Run("should create server instance and return server instance", func(t *testing.T) {
		cfg := &config.Config{
			ServerPort: "8080",
		}

		var handlers []Handler
		testServer := NewServer(cfg, handlers)

		assert.IsType(t, &server{}, testServer)
	})

	t.Run("should server start and stop", func(t *testing.T) {
		cfg := &config.Config{
			ServerPort: "8080",
		}

		var handlers []Handler
		testServer := NewServer(cfg, handlers)

		go func() {
			err := testServer.Start()
			assert.NoError(t, err)
		}()

		err := testServer.Shutdown()
		assert.NoError(t, err)
	})
}

func TestServer_GetFiberInstance(t *testing.T) {
	testServer := &server{
		fiber: fiber.New(),
	}
	fiberInstance := testServer.GetFiberInstance()

	assert.IsType(t, fiberInstance, testServer.fiber)
}

func TestServer_RegisterRoutes(t *testing.T) {
	testServer := NewServer(&config.Config{}, []Handler{pingHandler{}})
	testServer.RegisterRoutes()

	resp, err := testServer.GetFiberInstance().Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = testServer.GetFiberInstance().Test(httptest.NewRequest(fiber.MethodGet, "/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestServer_LambdaProxyHandler(t *testing.T) {
	testServer := NewServer(&config.Config{}, []Handler{pingHandler{}})
	testServer.RegisterRoutes()

	resp, err := testServer.LambdaProxyHandler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: fiber.MethodGet,
		Path:       "/ping",
	})

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", resp.Body)
}
