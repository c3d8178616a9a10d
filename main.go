package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-solver/api"
	api_i "github.com/beka-birhanu/vinom-solver/api/i"
	"github.com/beka-birhanu/vinom-solver/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-solver/api/maze"
	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/beka-birhanu/vinom-solver/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-solver/infrastruture/log"
	"github.com/beka-birhanu/vinom-solver/infrastruture/repo"
	"github.com/beka-birhanu/vinom-solver/infrastruture/token"
	"github.com/beka-birhanu/vinom-solver/service"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	runRepo        *repo.RunRepo
	resultCache    i.ResultCache
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	solveService   i.MazeSolver
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("User repository initialized")

	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	if err := runRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating run indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run repository initialized")
}

func initResultCache(client *redis.Client) {
	resultCache = cache.NewRedisResultCache(client, config.Envs.CacheTTLSeconds)
	appLogger.Info("Result cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initSolveService() {
	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	solveService, err = service.NewSolveService(service.SolveConfig{
		RunRepo:  runRepo,
		Cache:    resultCache,
		Logger:   solverLogger,
		Timeout:  time.Duration(config.Envs.SolveTimeoutMs) * time.Millisecond,
		MaxNodes: config.Envs.MaxNodes,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solve service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")

	apiLogger, err := logger.New("MAZE-API", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze api logger: %v", err))
		os.Exit(1)
	}
	mazeController, err = mazeapi.NewMazeController(solveService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	config.Init()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx, mongoClient)
	initResultCache(redisClient)
	initJWTTokenizer()
	initAuthService()
	initSolveService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
