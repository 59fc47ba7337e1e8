package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/luxe-fashion/luxe-backend/config"
	"github.com/luxe-fashion/luxe-backend/internal/app/container"
	"github.com/luxe-fashion/luxe-backend/internal/app/controller"
	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	"github.com/luxe-fashion/luxe-backend/internal/kv"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
	"github.com/luxe-fashion/luxe-backend/internal/router"
	"github.com/luxe-fashion/luxe-backend/internal/scheduler"
	"github.com/luxe-fashion/luxe-backend/internal/websocket"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
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

	logger.Info("Starting LUXE Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"storage":     cfg.Storage.Driver,
		"log_level":   logLevel,
	})

	// Initialize the storage bridge
	store, fileStore, cleanup, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}
	defer cleanup()

	// State containers hydrate from the bridge at startup
	cart := container.NewCart(store)
	wishlist := container.NewWishlist(store)

	cart.Subscribe(func(s container.CartSummary) {
		logger.Debug("Cart changed", map[string]interface{}{
			"total_items": s.TotalItems,
			"total_price": s.TotalPrice,
		})
	})
	wishlist.Subscribe(func(count int) {
		logger.Debug("Wishlist changed", map[string]interface{}{
			"count": count,
		})
	})

	// Initialize services
	productService := service.NewProductService()
	cartService := service.NewCartService(cart, productService)
	wishlistService := service.NewWishlistService(wishlist, productService)
	newsService := service.NewNewsService()
	chatService := service.NewChatService(&cfg.Chat)
	authService := service.NewAuthService(
		store,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	wishlistController := controller.NewWishlistController(wishlistService)
	newsController := controller.NewNewsController(newsService)
	chatController := controller.NewChatController(chatService)

	// Live assistant chat
	chatHub := websocket.NewHub(chatService)
	go chatHub.Run()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		cartController,
		wishlistController,
		newsController,
		chatController,
		chatHub,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Periodic backups only make sense for the file driver
	if cfg.Snapshot.Enabled && fileStore != nil {
		snapshots := scheduler.NewSnapshotScheduler(fileStore, cfg.Snapshot)
		if err := snapshots.Start(); err != nil {
			logger.Warn("Snapshot scheduler disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer snapshots.Stop()
		}
	}

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

// openStore builds the configured bridge driver. The second return is
// non-nil only for the file driver, which supports snapshots.
func openStore(cfg *config.Config) (kv.Store, *kv.FileStore, func(), error) {
	switch cfg.Storage.Driver {
	case "redis":
		store, err := kv.NewRedisStore(&cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, nil, func() {
			if err := store.Close(); err != nil {
				logger.Error("Failed to close redis store", err)
			}
		}, nil

	case "memory":
		return kv.NewMemoryStore(), nil, func() {}, nil

	default:
		store, err := kv.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store, func() {}, nil
	}
}
