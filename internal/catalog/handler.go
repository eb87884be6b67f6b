package catalog

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/logger"
	"beauty-base-api/pkg/server"
)

type handler struct {
	repository Repository
	validate   *validator.Validate
}

func NewHandler(repository Repository) server.Handler {
	return &handler{
		repository: repository,
		validate:   validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get("/services", h.GetServices)
	app.Get("/services/:id", h.GetServiceById)
	app.Post("/services", h.CreateService)
}

func (h *handler) GetServices(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "getServices")

	// a missing or non numeric limit means no limit
	limit := ctx.QueryInt("limit", 0)

	services, err := h.repository.FindServices(ctx.Context(), int64(limit))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(services)
}

func (h *handler) GetServiceById(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "getServiceById")

	serviceId, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(
			zap.String("serviceId", ctx.Params("id")),
			zap.Error(err),
		)
	}

	service, err := h.repository.FindServiceWithId(ctx.Context(), serviceId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(service)
}

func (h *handler) CreateService(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "createService")

	var payload ServicePayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	result, err := h.repository.InsertService(ctx.Context(), payload.ToDocument())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(result)
}
