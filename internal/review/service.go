package review

//go:generate mockgen -source=service.go -destination=mock_service.go -package=review

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"beauty-base-api/pkg/cerror"
	"beauty-base-api/pkg/config"
	"beauty-base-api/pkg/jwt_generator"
	"beauty-base-api/pkg/mongodb"
)

type Service interface {
	CreateReview(ctx context.Context, review *ReviewPayload) (*mongodb.InsertResult, error)
	GetServiceReviews(ctx context.Context, serviceId string) ([]ReviewDocument, error)
	GetMyReviews(ctx context.Context, identity *jwt_generator.Claims, email string) ([]ReviewDocument, error)
	UpdateMyReview(
		ctx context.Context,
		identity *jwt_generator.Claims,
		reviewId primitive.ObjectID,
		review *UpdateReviewPayload,
	) (*mongodb.UpdateResult, error)
	DeleteMyReview(
		ctx context.Context,
		identity *jwt_generator.Claims,
		reviewId primitive.ObjectID,
	) (*mongodb.DeleteResult, error)
}

type service struct {
	reviewRepository Repository
	upsertOnUpdate   bool
	now              func() time.Time
}

func NewService(reviewRepository Repository, reviewConfig config.ReviewConfig) Service {
	return &service{
		reviewRepository: reviewRepository,
		upsertOnUpdate:   reviewConfig.UpsertOnUpdate,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// CreateReview trusts the email in the body; ownership is only enforced on
// the guarded routes.
func (s *service) CreateReview(ctx context.Context, review *ReviewPayload) (*mongodb.InsertResult, error) {
	document := review.ToDocument()
	if document.Date.IsZero() {
		document.Date = s.now()
	}

	return s.reviewRepository.InsertReview(ctx, document)
}

func (s *service) GetServiceReviews(ctx context.Context, serviceId string) ([]ReviewDocument, error) {
	return s.reviewRepository.FindReviewsWithServiceId(ctx, serviceId)
}

func (s *service) GetMyReviews(
	ctx context.Context,
	identity *jwt_generator.Claims,
	email string,
) ([]ReviewDocument, error) {
	if identity.Email != email {
		return nil, cerror.ErrorForbidden.WithFields(
			zap.String("requestedEmail", email),
		)
	}

	return s.reviewRepository.FindReviewsWithEmail(ctx, email)
}

func (s *service) UpdateMyReview(
	ctx context.Context,
	identity *jwt_generator.Claims,
	reviewId primitive.ObjectID,
	review *UpdateReviewPayload,
) (*mongodb.UpdateResult, error) {
	err := s.authorizeOwner(ctx, identity, reviewId)
	if err != nil {
		return nil, err
	}

	return s.reviewRepository.UpdateReviewWithId(ctx, reviewId, review, s.upsertOnUpdate)
}

func (s *service) DeleteMyReview(
	ctx context.Context,
	identity *jwt_generator.Claims,
	reviewId primitive.ObjectID,
) (*mongodb.DeleteResult, error) {
	err := s.authorizeOwner(ctx, identity, reviewId)
	if err != nil {
		return nil, err
	}

	return s.reviewRepository.DeleteReviewWithId(ctx, reviewId)
}

// authorizeOwner fails with Forbidden when the review exists and belongs to
// another identity. A missing review is left to the write itself.
func (s *service) authorizeOwner(
	ctx context.Context,
	identity *jwt_generator.Claims,
	reviewId primitive.ObjectID,
) error {
	review, err := s.reviewRepository.FindReviewWithId(ctx, reviewId)
	if err != nil {
		if errors.Is(err, cerror.ErrorReviewNotFound) {
			return nil
		}

		return err
	}

	if review.Email != identity.Email {
		return cerror.ErrorForbidden.WithFields(
			zap.String("reviewId", reviewId.Hex()),
		)
	}

	return nil
}
