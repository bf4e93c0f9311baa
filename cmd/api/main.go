package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/tiered-support/support-desk/internal/api/http"
	"github.com/tiered-support/support-desk/internal/api/http/handlers"
	"github.com/tiered-support/support-desk/internal/config"
	"github.com/tiered-support/support-desk/internal/mail"
	"github.com/tiered-support/support-desk/internal/observability"
	"github.com/tiered-support/support-desk/internal/persistence"
	"github.com/tiered-support/support-desk/internal/ratelimit"
	"github.com/tiered-support/support-desk/internal/repository"
	"github.com/tiered-support/support-desk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Telemetry, cfg.App)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var limiter ratelimit.Limiter
	if redis.Enabled() && cfg.Redis.RatePerMinute > 0 {
		limiter = ratelimit.NewRedisLimiter(redis.Client, cfg.Redis.RatePerMinute, time.Minute)
	}

	var sender mail.Sender
	if cfg.Mail.Enabled() {
		sender = mail.NewResendSender(cfg.Mail.APIKey)
	} else {
		logger.Warn("RESEND_API_KEY or SUPPORT_INBOX_EMAIL not set; tickets will be stored without email relay")
	}

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: repository.NewMemoryTicketRepository(),
		Notifier:   service.NewNotificationService(sender, cfg.Mail, logger, metrics),
		Logger:     logger,
		Metrics:    metrics,
	})

	app := httptransport.NewApp(cfg.App.Name, logger)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Tickets:   handlers.NewTicketsHandler(ticketService),
		Pages:     handlers.NewPagesHandler(cfg.App.SiteName),
		Static:    httptransport.StaticHandler(),
		RateLimit: httptransport.RateLimit(limiter, logger),
		Metrics:   metrics.Registry(),
	})

	go func() {
		logger.Info("http listen", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
