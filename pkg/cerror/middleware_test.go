//go:build unit

package cerror

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMiddleware(t *testing.T) {
	testCases := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "custom error",
			err:                NewError(fiber.StatusForbidden, "test error", zap.String("key", "value")),
			expectedStatusCode: fiber.StatusForbidden,
			expectedBody:       `{"httpStatus":403}`,
		},
		{
			name:               "fiber error",
			err:                fiber.ErrNotFound,
			expectedStatusCode: fiber.StatusNotFound,
			expectedBody:       `{"httpStatus":404}`,
		},
		{
			name:               "unknown error",
			err:                errors.New("something went wrong"),
			expectedStatusCode: fiber.StatusInternalServerError,
			expectedBody:       `{"httpStatus":500}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{
				ErrorHandler: Middleware,
			})
			app.Get("/", func(ctx *fiber.Ctx) error {
				return testCase.err
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedStatusCode, resp.StatusCode)
			assert.JSONEq(t, testCase.expectedBody, string(body))
		})
	}
}
