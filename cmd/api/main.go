package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/config"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/broker"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/cache"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/middleware"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/postgres"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/search"

	brandH "github.com/aqmarzaini/diecast-admin-service/internal/brand/handler"
	brandRepoPkg "github.com/aqmarzaini/diecast-admin-service/internal/brand/repository"
	brandUCPkg "github.com/aqmarzaini/diecast-admin-service/internal/brand/usecase"

	colH "github.com/aqmarzaini/diecast-admin-service/internal/collection/handler"
	colRepoPkg "github.com/aqmarzaini/diecast-admin-service/internal/collection/repository"
	colUCPkg "github.com/aqmarzaini/diecast-admin-service/internal/collection/usecase"

	shopH "github.com/aqmarzaini/diecast-admin-service/internal/shop/handler"
	shopRepoPkg "github.com/aqmarzaini/diecast-admin-service/internal/shop/repository"
	shopUCPkg "github.com/aqmarzaini/diecast-admin-service/internal/shop/usecase"

	purchaseH "github.com/aqmarzaini/diecast-admin-service/internal/purchase/handler"
	purchaseRepoPkg "github.com/aqmarzaini/diecast-admin-service/internal/purchase/repository"
	purchaseUCPkg "github.com/aqmarzaini/diecast-admin-service/internal/purchase/usecase"

	statsH "github.com/aqmarzaini/diecast-admin-service/internal/stats/handler"
	statsRepoPkg "github.com/aqmarzaini/diecast-admin-service/internal/stats/repository"
	statsUCPkg "github.com/aqmarzaini/diecast-admin-service/internal/stats/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	brandRepo := brandRepoPkg.NewPGRepository(db)
	colRepo := colRepoPkg.NewPGRepository(db)
	shopRepo := shopRepoPkg.NewPGRepository(db)
	purchaseRepo := purchaseRepoPkg.NewPGRepository(db)
	detailRepo := purchaseRepoPkg.NewDetailPGRepository(db)
	statsRepo := statsRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka Publisher
	publisher := broker.NewPublisher(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer publisher.Close()
	appLogger.Info("Initialized Kafka publisher", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 5.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search falls back to the database)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	brandUC := brandUCPkg.NewBrandUseCase(brandRepo, redisClient, appLogger)
	colUC := colUCPkg.NewCollectionUseCase(colRepo, esClient, appLogger)
	shopUC := shopUCPkg.NewShopUseCase(shopRepo, appLogger)
	purchaseUC := purchaseUCPkg.NewPurchaseUseCase(purchaseRepo, detailRepo, colUC, shopUC, redisClient, publisher, appLogger)
	statsUC := statsUCPkg.NewStatsUseCase(statsRepo, redisClient, appLogger)

	// 7. Initialize Handlers and Router
	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(appLogger), middleware.Recovery(appLogger))

	// Keep-alive for hosted databases that idle out: touch the brand table.
	router.GET("/healthz", func(c *gin.Context) {
		if _, err := brandRepo.FindAll(c.Request.Context(), true); err != nil {
			appLogger.Error("keep-alive query failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	brandH.NewBrandHandler(brandUC, appLogger).RegisterRoutes(api)
	colH.NewCollectionHandler(colUC, appLogger).RegisterRoutes(api)
	shopH.NewShopHandler(shopUC, appLogger).RegisterRoutes(api)
	purchaseH.NewPurchaseHandler(purchaseUC, appLogger).RegisterRoutes(api)
	statsH.NewStatsHandler(statsUC, appLogger).RegisterRoutes(api)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
