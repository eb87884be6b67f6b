package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"beauty-base-api/internal/catalog"
	"beauty-base-api/internal/review"
	"beauty-base-api/internal/token"
	"beauty-base-api/pkg/config"
	"beauty-base-api/pkg/guard"
	"beauty-base-api/pkg/jwt_generator"
	"beauty-base-api/pkg/logger"
	"beauty-base-api/pkg/mongodb"
	"beauty-base-api/pkg/server"
)

const livenessMessage = "Beauty Base Server Is Working"

func main() {
	isAtRemote := os.Getenv(config.IsAtRemote)

	log, err := logger.NewLogger(isAtRemote != "")
	if err != nil {
		panic(err)
	}
	defer func(l *zap.SugaredLogger) {
		_ = l.Sync()
	}(log)

	if isAtRemote == "" {
		err = godotenv.Load()
		if err != nil {
			log.Warnw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalw(
			"failed to read config",
			zap.Error(err),
		)
	}
	cfg.Print()

	var jwtGenerator jwt_generator.JwtGenerator
	jwtGenerator, err = jwt_generator.NewJwtGenerator(cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	ctx := context.Background()
	mongodbClient, err := mongodb.NewClient(ctx, cfg.Mongodb)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Errorw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongodbClient, ctx)

	serviceRepository := catalog.NewRepository(mongodbClient, cfg.Mongodb)
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		defer func(client *redis.Client) {
			_ = client.Close()
		}(redisClient)

		serviceRepository = catalog.NewCachedRepository(
			serviceRepository,
			catalog.NewRedisCache(redisClient, cfg.Redis.Ttl),
		)
		log.Infow("service cache enabled", zap.String("address", cfg.Redis.Address))
	}

	reviewRepository := review.NewRepository(mongodbClient, cfg.Mongodb)
	reviewService := review.NewService(reviewRepository, cfg.Review)

	handlers := []server.Handler{
		catalog.NewHandler(serviceRepository),
		review.NewHandler(reviewService, guard.Middleware(jwtGenerator)),
		token.NewHandler(jwtGenerator),
	}
	srv := server.NewServer(cfg, handlers)

	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logger.Middleware(log))
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString(livenessMessage)
	})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	if isAtRemote == "" {
		log.Infow("server is listening", zap.String("port", cfg.ServerPort))
		err = srv.Start()
		if err != nil {
			log.Errorw(
				"server stopped with error",
				zap.Error(err),
			)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}
