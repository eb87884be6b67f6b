//go:build unit

package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/mongodb"
	"beauty-base-api/pkg/server"
)

func newTestApp(repository Repository) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	NewHandler(repository).RegisterRoutes(app)

	return app
}

func TestNewHandler(t *testing.T) {
	serviceHandler := NewHandler(nil)

	assert.Implements(t, (*server.Handler)(nil), serviceHandler)
}

func TestHandler_GetServices(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindServices(gomock.Any(), int64(3)).
			Return([]ServiceDocument{
				{Id: TestServiceId, Title: TestServiceTitle, Price: 120},
			}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/services?limit=3", nil)
		resp, err := newTestApp(mockRepository).Test(req)
		require.NoError(t, err)

		var services []ServiceDocument
		err = json.NewDecoder(resp.Body).Decode(&services)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Len(t, services, 1)
		assert.Equal(t, TestServiceId, services[0].Id)
	})

	testCases := []struct {
		name  string
		query string
	}{
		{name: "when limit is omitted should fetch without limit", query: ""},
		{name: "when limit is not a number should fetch without limit", query: "?limit=abc"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepository := NewMockRepository(mockController)
			mockRepository.
				EXPECT().
				FindServices(gomock.Any(), int64(0)).
				Return([]ServiceDocument{}, nil)

			req := httptest.NewRequest(fiber.MethodGet, "/services"+testCase.query, nil)
			resp, err := newTestApp(mockRepository).Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, "[]", string(body))
		})
	}

	t.Run("when repository return error should return it", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindServices(gomock.Any(), gomock.Any()).
			Return(nil, cerror.NewError(fiber.StatusInternalServerError, "something went wrong"))

		req := httptest.NewRequest(fiber.MethodGet, "/services", nil)
		resp, err := newTestApp(mockRepository).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHandler_GetServiceById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindServiceWithId(gomock.Any(), TestServiceId).
			Return(&ServiceDocument{Id: TestServiceId, Title: TestServiceTitle}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/services/"+TestServiceId.Hex(), nil)
		resp, err := newTestApp(mockRepository).Test(req)
		require.NoError(t, err)

		var service ServiceDocument
		err = json.NewDecoder(resp.Body).Decode(&service)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, TestServiceTitle, service.Title)
	})

	t.Run("when id is malformed should return bad request", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/services/not-an-object-id", nil)
		resp, err := newTestApp(NewMockRepository(mockController)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when service does not exist should return not found", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			FindServiceWithId(gomock.Any(), TestServiceId).
			Return(nil, cerror.ErrorServiceNotFound)

		req := httptest.NewRequest(fiber.MethodGet, "/services/"+TestServiceId.Hex(), nil)
		resp, err := newTestApp(mockRepository).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_CreateService(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		payload := ServicePayload{
			Title:       TestServiceTitle,
			Image:       TestServiceImage,
			Price:       120,
			Rating:      4.5,
			Description: "full bridal package",
		}

		mockRepository := NewMockRepository(mockController)
		mockRepository.
			EXPECT().
			InsertService(gomock.Any(), payload.ToDocument()).
			Return(&mongodb.InsertResult{Acknowledged: true, InsertedId: TestServiceId}, nil)

		reqBody, err := json.Marshal(&payload)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/services", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := newTestApp(mockRepository).Test(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+TestServiceId.Hex()+`"}`, string(body))
	})

	t.Run("when body cant parsing should return error", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/services", strings.NewReader(`"invalid":"body"`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := newTestApp(NewMockRepository(mockController)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when validator cant validate payload struct should return error", func(t *testing.T) {
		reqBody, err := json.Marshal(&ServicePayload{Price: -1})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/services", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := newTestApp(NewMockRepository(mockController)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
