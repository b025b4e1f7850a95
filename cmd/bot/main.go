package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homenotify/internal/config"
	"homenotify/internal/decoder"
	"homenotify/internal/dispatcher"
	"homenotify/internal/eventbus"
	"homenotify/internal/handler"
	"homenotify/internal/listener"
	"homenotify/internal/middleware"
	"homenotify/internal/repository/file"
	"homenotify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting smart-home notification bridge")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize user store
	store, err := file.NewUserStore(cfg.StoreDir, logger)
	if err != nil {
		logger.Fatal("Failed to open user store", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token: cfg.BotToken,
		Poller: &tele.LongPoller{
			Timeout:        10 * time.Second,
			AllowedUpdates: []string{"message", "callback_query"},
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	registration := service.NewRegistrationService(store, logger)

	// Wire the internal event bus: listener publishes, dispatcher fans out
	bus := eventbus.New(logger)
	disp := dispatcher.New(store, handler.NewSender(bot), logger)
	disp.Register(bus)

	lst := listener.New(cfg.MQTT, cfg.Topics, decoder.New(cfg.Topics), bus, logger)

	// Register bot handlers
	bot.Use(middleware.Verified(registration, logger))
	h := handler.NewHandler(bot, registration, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bus listener in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go lst.Run(ctx)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	bot.Stop()
	cancel()
	disp.Wait()

	logger.Info("Stopped gracefully")
}
