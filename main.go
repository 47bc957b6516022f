package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/telemetry"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	mazeRepo        i.MazeRepo
	mazeCache       i.MazeCache
	mazeLocker      i.Locker
	tracer          trace.Tracer
	shutdownTracing func(context.Context) error
	mazeService     i.MazeService
	mazeController  api_i.Controller
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func fatal(format string, args ...any) {
	appLogger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initMazeCache(client *redis.Client) {
	mazeCache = cache.NewRedisMazeCache(client, "vinom", config.Envs.CacheTTLSeconds)
	mazeLocker = cache.NewRedisLocker(client)
	appLogger.Info("Maze cache and locker initialized")
}

func initTracing(ctx context.Context) {
	if !config.Envs.TracingEnabled {
		tracer = telemetry.NoopTracer()
		return
	}

	var err error
	shutdownTracing, err = telemetry.Setup(ctx)
	if err != nil {
		fatal("Setting up tracing: %v", err)
	}
	tracer = telemetry.Tracer("service")
	appLogger.Info("Tracing initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorPurple, os.Stdout)
	if err != nil {
		fatal("Creating maze service logger: %v", err)
	}

	mazeService, err = service.NewMazeService(mazeRepo, mazeCache, mazeLocker, serviceLogger, &service.Options{
		MaxDimension: config.Envs.MaxDimension,
		LockTTL:      time.Duration(config.Envs.LockTTLSeconds) * time.Second,
		Tracer:       tracer,
	})
	if err != nil {
		fatal("Creating maze service: %v", err)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	mazeController = mazeapi.NewMazeController(mazeService, identity.RequireScope(service.ScopeMazeWrite))
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuth(config.Envs.APIClientID, config.Envs.APIClientSecret, jwtTokenizer, nil)
	if err != nil {
		fatal("Creating auth service: %v", err)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initTracing(ctx)
	if shutdownTracing != nil {
		defer func() {
			_ = shutdownTracing(context.Background())
		}()
	}

	initMazeRepo(mongoClient)
	initMazeCache(redisClient)
	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
