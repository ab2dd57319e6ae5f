package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"goroute/config"
	"goroute/cron"
	"goroute/handlers"
	"goroute/middleware"
	"goroute/routes"
	"goroute/services/booking"
	"goroute/services/notification"
	"goroute/services/ticket"
	"goroute/services/transport"
	"goroute/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Session store.
	var (
		store       booking.SessionStore
		redisClient *redis.Client
	)
	switch cfg.SessionBackend {
	case config.BackendRedis:
		client, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize redis session store: %v", err)
		}
		defer client.Close()
		redisClient = client
		store = booking.NewRedisSessionStore(client, cfg.SessionTTL)
	default:
		mem := booking.NewMemorySessionStore(cfg.SessionTTL)
		cron.StartSessionSweeper(ctx, mem, cfg.SessionSweepInterval, logger)
		store = mem
	}
	logger.Info("Session store ready", zap.String("backend", cfg.SessionBackend), zap.Duration("ttl", cfg.SessionTTL))

	// Booking core.
	flow, err := booking.NewFlow(booking.FlowDeps{
		Store:    store,
		Renderer: ticket.NewPDFRenderer(logger),
		Random:   transport.NewLockedSource(transport.NewSource(cfg.RandomSeed)),
		Logger:   logger,
		Email:    cfg.TicketEmail,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking flow: %v", err)
	}

	health := utils.NewHealthMonitor(redisClient, cfg.TelegramBotToken != "")
	health.Start(ctx, 30*time.Second)

	// Telegram bot.
	if cfg.TelegramBotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to create telegram bot: %v", err)
		}
		logger.Info("Authorized on telegram", zap.String("bot", bot.Self.UserName))
		tg := handlers.NewTelegramHandler(flow, notification.NewTelegramMessenger(bot, logger), logger)
		go tg.Run(ctx, bot, 30)
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN is empty, telegram bot disabled")
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlers.NewChatHandler(flow, health, logger))

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
