package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"product-admin/internal/config"
	"product-admin/internal/database"
	"product-admin/internal/middleware"
	"product-admin/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	db := client.Database(cfg.MongoDB)

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		logger.Fatal("index bootstrap failed", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.ErrorFormatter(logger),
		middleware.Identity(),
	)
	routes.RegisterRoutes(router, db, logger, cfg.CacheTTL)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
