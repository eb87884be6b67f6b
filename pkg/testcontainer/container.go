// Package testcontainer starts throwaway MongoDB and Redis containers for the
// integration tests.
package testcontainer

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"beauty-base-api/pkg/config"
)

const (
	MongodbUsername = "root"
	MongodbPassword = "12345"
	MongodbDatabase = "beautyBase"
)

func start(t *testing.T, ctx context.Context, req testcontainers.ContainerRequest) testcontainers.Container {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	return container
}

// Mongodb starts a mongo container and returns a config pointing at it.
func Mongodb(t *testing.T, ctx context.Context) config.MongodbConfig {
	container := start(t, ctx, testcontainers.ContainerRequest{
		Image: "mongo:6",
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": MongodbUsername,
			"MONGO_INITDB_ROOT_PASSWORD": MongodbPassword,
		},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	})

	mongodbUri, err := container.Endpoint(ctx, "mongodb")
	if err != nil {
		t.Fatalf("failed to get endpoint: %s", err)
	}

	return config.MongodbConfig{
		Uri:               mongodbUri,
		Username:          MongodbUsername,
		Password:          MongodbPassword,
		Database:          MongodbDatabase,
		ServiceCollection: "services",
		ReviewCollection:  "reviews",
		Timeout:           10 * time.Second,
	}
}

// Redis starts a redis container and returns its host:port.
func Redis(t *testing.T, ctx context.Context) string {
	container := start(t, ctx, testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	})

	address, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("failed to get endpoint: %s", err)
	}

	return address
}
