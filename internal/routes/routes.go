package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"product-admin/internal/cache"
	"product-admin/internal/handlers"
	"product-admin/internal/repository"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, logger *zap.Logger, cacheTTL time.Duration) {
	products := repository.NewProductRepository(db)
	audit := repository.NewAuditRepository(db)
	h := handlers.NewProductHandler(products, audit, cache.New(cacheTTL), logger)

	router.Static("/assets", "./assets")

	api := router.Group("/api")
	{
		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)
	}
}
