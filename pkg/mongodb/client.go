package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"beauty-base-api/pkg/config"
)

const connectTimeout = 10 * time.Second

// NewClient connects with the configured credentials and pings the primary
// so a wrong URI fails at startup rather than on the first request.
func NewClient(ctx context.Context, cfg config.MongodbConfig) (*mongo.Client, error) {
	mongodbCredential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	credentials := options.Client().
		ApplyURI(cfg.Uri).
		SetAuth(mongodbCredential).
		SetServerAPIOptions(mongodbServerAPIOptions).
		SetTimeout(cfg.Timeout)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, credentials)
	if err != nil {
		return nil, err
	}

	err = client.Ping(connectCtx, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}
