package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cinetrack/cmd"
	"cinetrack/internal/data/repository"
	"cinetrack/internal/tmdb"
	"cinetrack/internal/wire"
	"cinetrack/pkg/cache"
	"cinetrack/pkg/database"
	"cinetrack/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	// Redis is optional: without it the TMDB cache stays in-process and rate limiting is off
	rdb := database.NewRedisClient(config.Redis)
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	} else {
		logger.Warn("Redis unavailable, shared cache and rate limiting disabled")
	}

	responseCache := cache.NewTiered(
		cache.NewMemoryStore(config.TMDB.CacheSize, config.TMDB.CacheTTL, cache.SystemClock),
		cache.NewRedisStore(rdb, "tmdb:", config.TMDB.CacheTTL, logger),
	)
	tmdbClient := tmdb.NewClient(tmdb.Config{
		APIKey:   config.TMDB.APIKey,
		BaseURL:  config.TMDB.BaseURL,
		Language: config.TMDB.Language,
		Timeout:  config.TMDB.Timeout,
	}, logger, tmdb.WithCache(responseCache))

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, tmdbClient, rdb, config, logger)

	go cmd.SessionPurger(ctx, config.Session.PurgeEvery, app.Service.Auth.PurgeExpiredSessions, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
