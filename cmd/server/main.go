package main

import (
	"log"
	"log/slog"
	"os"

	"burger_club/internal/config"
	"burger_club/internal/handlers"
	"burger_club/internal/storage"
	"burger_club/internal/store"
	"burger_club/internal/workflow"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Open the configured storage backend; unknown or failing backends
	// fall back to memory inside Open.
	kv := storage.Open(cfg.StorageBackend, cfg.SQLitePath, cfg.RedisURL, logger)
	defer kv.Close()

	// Initialize the order store and confirmation workflow
	orderStore := store.New(kv, logger)
	orderWorkflow := workflow.New(orderStore)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderWorkflow, orderStore)

	// Setup routes
	router := gin.Default()

	router.GET("/health", orderHandler.Health)

	api := router.Group("/api")
	{
		api.GET("/menu", orderHandler.GetMenu)

		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.SubmitOrder)
		api.POST("/orders/confirm", orderHandler.ConfirmOrder)
		api.POST("/orders/cancel", orderHandler.CancelOrder)
		api.GET("/orders/draft", orderHandler.GetDraft)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
