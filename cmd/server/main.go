package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zenwear/zen-backend/config"
	"github.com/zenwear/zen-backend/internal/app/controller"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/internal/app/service"
	"github.com/zenwear/zen-backend/internal/db"
	"github.com/zenwear/zen-backend/internal/middleware"
	"github.com/zenwear/zen-backend/internal/router"
	"github.com/zenwear/zen-backend/pkg/logger"
	"github.com/zenwear/zen-backend/pkg/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting ZEN Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(database); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	storeRepo := repository.NewStoreRepository(database)
	productRepo := repository.NewProductRepository(database)
	cartRepo := repository.NewCartRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	reviewRepo := repository.NewReviewRepository(database)

	// Initialize notifier
	var notifier service.Notifier = service.NopNotifier{}
	if cfg.Telegram.BotToken != "" {
		client, err := telegram.NewClient(telegram.Config{
			BotToken: cfg.Telegram.BotToken,
			ChatID:   cfg.Telegram.ChatID,
			BaseURL:  cfg.Telegram.BaseURL,
			Timeout:  cfg.Telegram.Timeout,
		})
		if err != nil {
			logger.Fatal("Failed to configure telegram notifier", err)
		}
		notifier = service.NewTelegramNotifier(client)
		logger.Info("Telegram order notifications enabled", map[string]interface{}{
			"chat_id": cfg.Telegram.ChatID,
		})
	} else {
		logger.Warn("Telegram bot token not set, order notifications disabled", nil)
	}

	// Initialize services
	storeService := service.NewStoreService(database, storeRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, notifier)
	reviewService := service.NewReviewService(reviewRepo)

	// Initialize controllers
	storeController := controller.NewStoreController(storeService, productService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	reviewController := controller.NewReviewController(reviewService)

	// Initialize middleware
	adminMiddleware := middleware.NewAdminMiddleware(cfg.Admin.Secret)
	if !adminMiddleware.Enabled() {
		logger.Warn("ADMIN_SECRET not set, admin endpoints are open", nil)
	}

	// Setup router
	r := router.NewRouter(
		storeController,
		productController,
		cartController,
		orderController,
		reviewController,
		adminMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
