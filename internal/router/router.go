package router

import (
	"github.com/gin-gonic/gin"

	"github.com/zenwear/zen-backend/config"
	"github.com/zenwear/zen-backend/internal/app/controller"
	"github.com/zenwear/zen-backend/internal/middleware"
)

type Router struct {
	storeController   *controller.StoreController
	productController *controller.ProductController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	reviewController  *controller.ReviewController
	adminMiddleware   *middleware.AdminMiddleware
	config            *config.Config
}

func NewRouter(
	storeController *controller.StoreController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	reviewController *controller.ReviewController,
	adminMiddleware *middleware.AdminMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		storeController:   storeController,
		productController: productController,
		cartController:    cartController,
		orderController:   orderController,
		reviewController:  reviewController,
		adminMiddleware:   adminMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	admin := r.adminMiddleware.RequireSecret()

	api := router.Group("/api")
	{
		stores := api.Group("/stores")
		{
			stores.GET("", r.storeController.GetStores)
			stores.GET("/:id/products", r.storeController.GetStoreProducts)
			stores.POST("", admin, r.storeController.CreateStore)
			stores.PATCH("/:id", admin, r.storeController.UpdateStore)
			stores.DELETE("/:id", admin, r.storeController.DeleteStore)
		}

		products := api.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProductByID)
			products.POST("", admin, r.productController.CreateProduct)
			products.PATCH("/:id", admin, r.productController.UpdateProduct)
			products.DELETE("/:id", admin, r.productController.DeleteProduct)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/:userId", r.cartController.GetCart)
			cart.POST("/:userId", r.cartController.AddToCart)
			cart.DELETE("/:userId/:itemId", r.cartController.RemoveFromCart)
		}

		orders := api.Group("/orders")
		{
			orders.GET("/:userId", r.orderController.GetOrders)
			orders.POST("/:userId", r.orderController.Checkout)
			orders.PATCH("/order/:orderId/status", admin, r.orderController.UpdateOrderStatus)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", r.reviewController.GetReviews)
			reviews.POST("", r.reviewController.CreateReview)
			reviews.POST("/:reviewId/comments", r.reviewController.CreateComment)
		}

		// The frontend probes this once at startup to decide whether to
		// show admin controls.
		api.GET("/admin/verify", admin, func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, "+middleware.AdminSecretHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
