package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/viajante-ai/trip-planner/internal/api/router"
	"github.com/viajante-ai/trip-planner/internal/bot"
	appconfig "github.com/viajante-ai/trip-planner/internal/config"
	"github.com/viajante-ai/trip-planner/internal/http/handlers"
	"github.com/viajante-ai/trip-planner/internal/llm"
	"github.com/viajante-ai/trip-planner/internal/observability/metrics"
	"github.com/viajante-ai/trip-planner/internal/webchat"
	"github.com/viajante-ai/trip-planner/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting viajante trip-planner API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"destination_policy", cfg.DestinationPolicy,
		"session_backend", cfg.SessionBackend,
	)

	ctx := context.Background()

	gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to configure gemini client", "error", err)
		os.Exit(1)
	}
	defer gemini.Close()

	var store bot.Store
	if cfg.SessionBackend == appconfig.SessionBackendRedis {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		store = bot.NewRedisStore(redis.NewClient(opts), cfg.SessionTTL)
		logger.Info("using redis session store", "addr", cfg.RedisAddr)
	} else {
		store = bot.NewMemoryStore()
	}

	reg := prometheus.NewRegistry()
	botMetrics := metrics.NewBotMetrics(reg)

	machine := bot.NewMachine(store, gemini, bot.Config{
		DestinationPolicy: cfg.DestinationPolicy,
		GenerationTimeout: cfg.GenerationTimeout,
		ExportDir:         cfg.ExportDir,
	}, botMetrics, logger)

	routerCfg := &router.Config{
		Logger:             logger,
		ChatHandler:        handlers.NewChatHandler(machine, cfg.PublicBaseURL, logger),
		FilesHandler:       handlers.NewFilesHandler(cfg.ExportDir, logger),
		WebchatHandler:     webchat.NewHandler(machine, cfg.PublicBaseURL, logger),
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
