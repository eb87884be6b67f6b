package review

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/guard"
	"beauty-base-api/pkg/jwt_generator"
	"beauty-base-api/pkg/logger"
	"beauty-base-api/pkg/server"
)

type handler struct {
	reviewService Service
	guard         fiber.Handler
	validate      *validator.Validate
}

func NewHandler(reviewService Service, guard fiber.Handler) server.Handler {
	return &handler{
		reviewService: reviewService,
		guard:         guard,
		validate:      validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/myreviews", h.CreateReview)
	app.Get("/serviceReviews", h.GetServiceReviews)
	app.Get("/myreviews", h.guard, h.GetMyReviews)
	app.Delete("/myreviews/:id", h.guard, h.DeleteMyReview)
	app.Patch("/myreviews/:id", h.guard, h.UpdateMyReview)
}

func (h *handler) CreateReview(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "createReview")

	var payload ReviewPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	result, err := h.reviewService.CreateReview(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(result)
}

func (h *handler) GetServiceReviews(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "getServiceReviews")

	serviceId := ctx.Query("serviceId")
	if serviceId == "" {
		return cerror.ErrorBadRequest.WithFields(zap.String("reason", "serviceId query is missing"))
	}

	reviews, err := h.reviewService.GetServiceReviews(ctx.Context(), serviceId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(reviews)
}

func (h *handler) GetMyReviews(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "getMyReviews")

	identity, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	email := ctx.Query("email")
	if email == "" {
		return cerror.ErrorBadRequest.WithFields(zap.String("reason", "email query is missing"))
	}

	reviews, err := h.reviewService.GetMyReviews(ctx.Context(), identity, email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(reviews)
}

func (h *handler) DeleteMyReview(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "deleteMyReview")

	identity, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	reviewId, err := reviewIdFromParams(ctx)
	if err != nil {
		return err
	}

	result, err := h.reviewService.DeleteMyReview(ctx.Context(), identity, reviewId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) UpdateMyReview(ctx *fiber.Ctx) error {
	log := logger.WithEvent(ctx, "updateMyReview")

	identity, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	reviewId, err := reviewIdFromParams(ctx)
	if err != nil {
		return err
	}

	var payload UpdateReviewPayload
	err = ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	result, err := h.reviewService.UpdateMyReview(ctx.Context(), identity, reviewId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func identityFromContext(ctx *fiber.Ctx) (*jwt_generator.Claims, error) {
	identity, isOk := guard.IdentityFromContext(ctx)
	if !isOk {
		return nil, cerror.ErrorMissingAuthorization
	}

	return identity, nil
}

func reviewIdFromParams(ctx *fiber.Ctx) (primitive.ObjectID, error) {
	reviewId, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return primitive.NilObjectID, cerror.ErrorBadRequest.WithFields(
			zap.String("reviewId", ctx.Params("id")),
			zap.Error(err),
		)
	}

	return reviewId, nil
}
