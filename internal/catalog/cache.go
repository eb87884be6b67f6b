package catalog

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"beauty-base-api/pkg/logger"
)

const serviceCacheKeyPrefix = "service:"

var ErrCacheMiss = errors.New("service is not cached")

type Cache interface {
	GetService(ctx context.Context, serviceId primitive.ObjectID) (*ServiceDocument, error)
	SetService(ctx context.Context, service *ServiceDocument) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{
		client: client,
		ttl:    ttl,
	}
}

func serviceCacheKey(serviceId primitive.ObjectID) string {
	return serviceCacheKeyPrefix + serviceId.Hex()
}

func (c *redisCache) GetService(ctx context.Context, serviceId primitive.ObjectID) (*ServiceDocument, error) {
	cached, err := c.client.Get(ctx, serviceCacheKey(serviceId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}

		return nil, err
	}

	var service ServiceDocument
	err = json.Unmarshal(cached, &service)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached service: %w", err)
	}

	return &service, nil
}

func (c *redisCache) SetService(ctx context.Context, service *ServiceDocument) error {
	marshalled, err := json.Marshal(service)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, serviceCacheKey(service.Id), marshalled, c.ttl).Err()
}

// cachedRepository serves FindServiceWithId from the cache first. Service
// documents are never updated, so entries only expire by TTL.
type cachedRepository struct {
	Repository
	cache Cache
}

func NewCachedRepository(repository Repository, cache Cache) Repository {
	return &cachedRepository{
		Repository: repository,
		cache:      cache,
	}
}

func (r *cachedRepository) FindServiceWithId(
	ctx context.Context,
	serviceId primitive.ObjectID,
) (*ServiceDocument, error) {
	log := logger.FromContext(ctx).With(zap.String("serviceId", serviceId.Hex()))

	service, err := r.cache.GetService(ctx, serviceId)
	if err == nil {
		return service, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warnw("failed to read service from cache", zap.Error(err))
	}

	service, err = r.Repository.FindServiceWithId(ctx, serviceId)
	if err != nil {
		return nil, err
	}

	err = r.cache.SetService(ctx, service)
	if err != nil {
		log.Warnw("failed to write service to cache", zap.Error(err))
	}

	return service, nil
}
