package catalog

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=catalog

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/config"
	"beauty-base-api/pkg/mongodb"
)

type Repository interface {
	InsertService(ctx context.Context, service *ServiceDocument) (*mongodb.InsertResult, error)
	FindServices(ctx context.Context, limit int64) ([]ServiceDocument, error)
	FindServiceWithId(ctx context.Context, serviceId primitive.ObjectID) (*ServiceDocument, error)
}

type repository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewRepository(
	mongodbClient *mongo.Client,
	mongodbConfig config.MongodbConfig,
) Repository {
	collection := mongodbClient.
		Database(mongodbConfig.Database).
		Collection(mongodbConfig.ServiceCollection)

	return &repository{
		collection: collection,
		timeout:    mongodbConfig.Timeout,
	}
}

func (r *repository) InsertService(
	ctx context.Context,
	service *ServiceDocument,
) (*mongodb.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, service)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert service",
			zap.Error(err),
		)
	}

	return mongodb.NewInsertResult(result), nil
}

func (r *repository) FindServices(ctx context.Context, limit int64) ([]ServiceDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find services",
			zap.Error(err),
		)
	}

	services := make([]ServiceDocument, 0)
	err = cursor.All(ctx, &services)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode services",
			zap.Error(err),
		)
	}

	return services, nil
}

func (r *repository) FindServiceWithId(
	ctx context.Context,
	serviceId primitive.ObjectID,
) (*ServiceDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var service ServiceDocument
	filter := bson.D{{Key: "_id", Value: serviceId}}
	err := r.collection.FindOne(ctx, filter).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.ErrorServiceNotFound.WithFields(
				zap.String("serviceId", serviceId.Hex()),
			)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find service with id",
			zap.Error(err),
		)
	}

	return &service, nil
}
