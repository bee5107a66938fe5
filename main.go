package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/observability/metrics"
	"github.com/wostup/wostup-go/internal/pkg/config"
	"github.com/wostup/wostup-go/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	otelShutdown, err := server.InitObservability("wostup-web", ":9092", logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	router, store := server.SetupRouter(srv.GetDBPool(), cfg, logger)
	srv.SetRouter(router)

	// Feed the live-session gauge.
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go metrics.WatchActiveSessions(watchCtx, 30*time.Second, store.ActiveSessions)

	srv.ServeDebug(":6060")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("Graceful shutdown complete")
	return nil
}
