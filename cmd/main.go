package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Rihab-nikh/followUp-Backend/config"
	"github.com/Rihab-nikh/followUp-Backend/internal/container"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/mongodb"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/internal/router"
	"github.com/Rihab-nikh/followUp-Backend/pkg/assistant"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
	"github.com/Rihab-nikh/followUp-Backend/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// MongoDB, with an in-memory fallback so local development works
	// without a running database.
	repos := memory.NewRepositories()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		logger.WithError(err).Warn("mongodb unreachable, using in-memory store")
	} else {
		defer func() { _ = client.Disconnect(context.Background()) }()
		db := client.Database(cfg.MongoDatabase())
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatalf("ensure indexes: %v", err)
		}
		repos = mongodb.NewRepositories(db)
		logger.Info("connected to mongodb")
	}

	// Redis backs distributed rate limiting and reset tokens; without it the
	// limiter degrades to a per-instance sliding window.
	var counters middleware.CounterStore = middleware.NewMemoryCounterStore()
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		counters = middleware.NewRedisCounterStore(rdb)
		container.SetRedis(rdb)
	}
	if !cfg.RateLimitEnabled {
		counters = nil
	}

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	// Assistant backend: Gemini when a key is configured, keyword mock
	// otherwise.
	var completer assistant.Completer = assistant.NewMock()
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.WithError(err).Warn("gemini init failed, using mock assistant")
		} else {
			defer func() { _ = gemini.Close() }()
			completer = gemini
		}
	}
	logger.WithField("backend", completer.Name()).Info("assistant ready")

	// Email queue for the password-reset flow.
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unreachable, reset emails disabled")
		} else {
			defer pub.Close()
			container.SetRabbitPub(pub)
		}
	}

	// Provide singletons to the container for registry auto-wiring.
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRepos(repos)
	container.SetCounters(counters)
	container.SetJWT(jwtManager)
	container.SetCompleter(completer)

	// Gin engine and global middleware.
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.DebugCORSFallback(cfg.Debug, cfg.CORSOrigins()))
	r.Use(middleware.Identity(repos.Users, jwtManager))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
