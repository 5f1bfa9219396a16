package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/repository"
	"storefront-service/services"
	"storefront-service/views"
)

// RegisterRoutes wires repositories, services, views, and controllers onto
// the router.
func RegisterRoutes(
	r *gin.Engine,
	redisClient *redis.Client,
	db *gorm.DB,
	cfg config.Config,
	log *zap.Logger,
) {
	cartStore := repository.NewRedisCartStore(redisClient, cfg.CartTTL)
	productRepo := repository.NewGormProductRepository(db)

	manager := services.NewCartManager(cartStore, log)
	cartView := views.NewCartView(productRepo)
	productsView := views.NewProductsView(productRepo)

	cartController := controllers.NewCartController(manager, productRepo, cartView, log)
	productController := controllers.NewProductController(productsView, log)

	r.GET("/products", productController.GetProducts)

	cart := r.Group("/cart")
	cart.Use(middleware.Session(cfg.SessionCookieName))
	{
		cart.GET("", cartController.GetCart)
		cart.POST("/add", cartController.AddToCart)
	}
}
