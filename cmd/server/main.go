package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/extiers/tierboard/internal/board"
	"github.com/extiers/tierboard/internal/cache"
	"github.com/extiers/tierboard/internal/config"
	"github.com/extiers/tierboard/internal/handlers"
	"github.com/extiers/tierboard/internal/refresh"
	"github.com/extiers/tierboard/internal/upstream"
	"github.com/extiers/tierboard/web"
)

func main() {
	if os.Getenv("ENV") != "docker" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	var redisClient *redis.Client
	var store cache.Store = cache.NewMemoryStore()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		store = cache.NewRedisStore(redisClient, logger)
	}

	snapshots := cache.NewSnapshots(store, cfg.CacheTTL)
	client := upstream.New(cfg.UpstreamURL, logger)
	svc := board.NewService(client, snapshots, cfg.Gamemodes, logger)

	h := handlers.New(handlers.Config{
		Board:          svc,
		Upstream:       client,
		Redis:          redisClient,
		Logger:         logger,
		SearchErrorTTL: cfg.SearchErrorTTL,
	})

	staticFiles, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		sugar.Fatalw("static assets", "error", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins, http.FS(staticFiles)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	refresher := refresh.New(svc, cfg.RefreshInterval, logger)
	go refresher.Run(ctx)

	go func() {
		sugar.Infow("server listening",
			"port", cfg.Port,
			"upstream", cfg.UpstreamURL,
			"gamemodes", cfg.Gamemodes,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("shutdown failed", "error", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
