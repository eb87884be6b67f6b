package review

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=review

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
	InsertReview(ctx context.Context, review *ReviewDocument) (*mongodb.InsertResult, error)
	FindReviewWithId(ctx context.Context, reviewId primitive.ObjectID) (*ReviewDocument, error)
	FindReviewsWithServiceId(ctx context.Context, serviceId string) ([]ReviewDocument, error)
	FindReviewsWithEmail(ctx context.Context, email string) ([]ReviewDocument, error)
	UpdateReviewWithId(
		ctx context.Context,
		reviewId primitive.ObjectID,
		review *UpdateReviewPayload,
		upsert bool,
	) (*mongodb.UpdateResult, error)
	DeleteReviewWithId(ctx context.Context, reviewId primitive.ObjectID) (*mongodb.DeleteResult, error)
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
		Collection(mongodbConfig.ReviewCollection)

	return &repository{
		collection: collection,
		timeout:    mongodbConfig.Timeout,
	}
}

func (r *repository) InsertReview(ctx context.Context, review *ReviewDocument) (*mongodb.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert review",
			zap.Error(err),
		)
	}

	return mongodb.NewInsertResult(result), nil
}

func (r *repository) FindReviewWithId(
	ctx context.Context,
	reviewId primitive.ObjectID,
) (*ReviewDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var review ReviewDocument
	filter := bson.D{{Key: "_id", Value: reviewId}}
	err := r.collection.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.ErrorReviewNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find review with id",
			zap.Error(err),
		)
	}

	return &review, nil
}

func (r *repository) FindReviewsWithServiceId(ctx context.Context, serviceId string) ([]ReviewDocument, error) {
	return r.findReviewsSortedByDate(ctx, bson.D{{Key: "serviceId", Value: serviceId}})
}

func (r *repository) FindReviewsWithEmail(ctx context.Context, email string) ([]ReviewDocument, error) {
	return r.findReviewsSortedByDate(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *repository) findReviewsSortedByDate(ctx context.Context, filter bson.D) ([]ReviewDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find reviews",
			zap.Error(err),
		)
	}

	reviews := make([]ReviewDocument, 0)
	err = cursor.All(ctx, &reviews)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode reviews",
			zap.Error(err),
		)
	}

	return reviews, nil
}

func (r *repository) UpdateReviewWithId(
	ctx context.Context,
	reviewId primitive.ObjectID,
	review *UpdateReviewPayload,
	upsert bool,
) (*mongodb.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: reviewId}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "feedback", Value: review.Feedback},
		{Key: "rating", Value: review.Rating},
	}}}
	updateOptions := options.Update().SetUpsert(upsert)

	result, err := r.collection.UpdateOne(ctx, filter, update, updateOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update review",
			zap.Error(err),
		)
	}

	return mongodb.NewUpdateResult(result), nil
}

func (r *repository) DeleteReviewWithId(
	ctx context.Context,
	reviewId primitive.ObjectID,
) (*mongodb.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: reviewId}}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete review",
			zap.Error(err),
		)
	}

	return mongodb.NewDeleteResult(result), nil
}
