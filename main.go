package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localconnect/config"
	"localconnect/database"
	"localconnect/database/repository/memstore"
	"localconnect/handlers"
	"localconnect/middleware"
	"localconnect/routes"
	"localconnect/services/admin"
	"localconnect/services/business"
	"localconnect/services/category"
	"localconnect/services/engagement"
	"localconnect/services/offer"
	"localconnect/services/trending"
	"localconnect/services/user"
	"localconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const devJWTSecret = "localconnect-dev-secret"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: %v", err)
	}
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set; using the development secret")
		cfg.JWTSecret = devJWTSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// storage.
	var (
		stores      database.Stores
		mongoClient *mongo.Client
	)
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		stores = memstore.New().Stores()
	default:
		mongoClient, err = database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
		stores = database.NewMongoStores(mongoClient.Database(cfg.DatabaseName))
		logger.Info("connected to MongoDB", zap.String("database", cfg.DatabaseName))
	}

	// rating lock.
	var (
		locker      engagement.RatingLocker
		redisClient *redis.Client
	)
	switch cfg.RatingLock {
	case config.RatingLockNone:
		logger.Warn("rating recomputation is not serialized; concurrent reviews may leave a stale average until the next write")
		locker = engagement.NoopLocker{}
	case config.RatingLockRedis:
		redisClient, err = utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisLockDB)
		if err != nil {
			logger.Fatal("main: failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		locker = engagement.NewRedisLocker(redisClient)
	default:
		locker = engagement.NewLocalLocker()
	}

	health := utils.NewHealthMonitor(mongoClient, redisClient)
	health.Start(ctx, time.Minute)

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	hb := newHandlerBundle(stores, locker, tokens, cfg.AllowAdminSignup, health, logger)
	router := routes.NewRouter(hb, logger, cfg.MaxRequestsPerMin, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}

// newHandlerBundle wires services onto the stores and wraps them in handlers.
func newHandlerBundle(stores database.Stores, locker engagement.RatingLocker, tokens *utils.TokenIssuer, allowAdminSignup bool, health *utils.HealthMonitor, logger *zap.Logger) *handlers.HandlerBundle {
	directory := &business.DefaultDirectoryService{
		Businesses: stores.Businesses,
		Follows:    stores.Follows,
		Users:      stores.Users,
		Logger:     logger.Named("business"),
	}
	engage := &engagement.DefaultEngagementService{
		Businesses: stores.Businesses,
		Reviews:    stores.Reviews,
		Follows:    stores.Follows,
		Visits:     stores.Visits,
		Users:      stores.Users,
		Locker:     locker,
		Logger:     logger.Named("engagement"),
	}
	trend := &trending.DefaultTrendingService{
		Visits:     stores.Visits,
		Businesses: stores.Businesses,
		Reviews:    stores.Reviews,
		Logger:     logger.Named("trending"),
	}
	adminSvc := &admin.DefaultAdminService{
		Users:      stores.Users,
		Businesses: stores.Businesses,
		Reviews:    stores.Reviews,
		Follows:    stores.Follows,
		Logger:     logger.Named("admin"),
	}
	userSvc := &user.DefaultUserService{
		Repo:             stores.Users,
		Businesses:       stores.Businesses,
		Tokens:           tokens,
		AllowAdminSignup: allowAdminSignup,
		Logger:           logger.Named("user"),
	}
	offerSvc := &offer.DefaultOfferService{
		Offers:     stores.Offers,
		Businesses: stores.Businesses,
		Logger:     logger.Named("offer"),
	}
	categorySvc := &category.DefaultCategoryService{
		Repo:   stores.Categories,
		Logger: logger.Named("category"),
	}

	return &handlers.HandlerBundle{
		Auth:     &middleware.Authenticator{Tokens: tokens, Users: stores.Users},
		Health:   health,
		User:     &handlers.UserHandler{Service: userSvc},
		Business: &handlers.BusinessHandler{Service: directory},
		Review:   &handlers.ReviewHandler{Service: engage},
		Follow:   &handlers.FollowHandler{Service: engage},
		Trending: &handlers.TrendingHandler{Service: trend, Engagement: engage},
		Offer:    &handlers.OfferHandler{Service: offerSvc},
		Category: &handlers.CategoryHandler{Service: categorySvc},
		Admin:    &handlers.AdminHandler{Service: adminSvc},
	}
}
