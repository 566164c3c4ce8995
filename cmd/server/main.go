package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-storefront-service/config"
	catalogUCPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	orderUCPkg "github.com/fekuna/omnipos-storefront-service/internal/order/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/server"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/internal/stock"
	stockListenerPkg "github.com/fekuna/omnipos-storefront-service/internal/stock/listener"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
	"github.com/fekuna/omnipos-storefront-service/pkg/broker"
	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-storefront-service/pkg/i18n"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	i18n.Init()
	for _, lang := range cfg.I18n.SupportedLangs {
		file := filepath.Join(cfg.I18n.LocalesDir, "active."+lang+".json")
		if err := i18n.Load(file); err != nil {
			log.Printf("Failed to load %s locales: %v", lang, err)
		}
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Redis
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

	// 4. Select the session state backend
	var stateStore storage.Store
	switch cfg.Session.StateBackend {
	case "postgres":
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
		stateStore = storage.NewPostgres(db, appLogger)
		appLogger.Info("Session state backed by PostgreSQL", zap.String("db_name", cfg.Postgres.DBName))
	case "memory":
		stateStore = storage.NewMemory()
		appLogger.Warn("Session state backed by process memory; state will not survive a restart")
	default:
		stateStore = storage.NewRedis(redisClient, appLogger)
		appLogger.Info("Session state backed by Redis")
	}

	// 5. Initialize Kafka Consumer + stock cache
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	stockCache := stock.NewRedisCache(redisClient, appLogger)
	stockListener := stockListenerPkg.NewStockListener(kafkaConsumer, stockCache, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go stockListener.Start(ctx)

	// 6. Upstream client + use cases
	client := commerce.NewClient(&commerce.Config{
		BaseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
	}, appLogger)

	catalogUC := catalogUCPkg.NewCatalogUseCase(client, redisClient, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(client, appLogger)

	// 7. Session manager
	sessions := session.NewManager(stateStore, stockCache, appLogger)
	go sessions.StartJanitor(ctx, 10*time.Minute, 2*time.Hour)

	// 8. Start HTTP server
	srv := server.New(cfg, sessions, client, catalogUC, orderUC, appLogger)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.Listen(port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
