package router

import (
	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/config"
	"github.com/luxe-fashion/luxe-backend/internal/app/controller"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
	"github.com/luxe-fashion/luxe-backend/internal/websocket"
)

type Router struct {
	authController     *controller.AuthController
	productController  *controller.ProductController
	cartController     *controller.CartController
	wishlistController *controller.WishlistController
	newsController     *controller.NewsController
	chatController     *controller.ChatController
	chatHub            *websocket.Hub
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	wishlistController *controller.WishlistController,
	newsController *controller.NewsController,
	chatController *controller.ChatController,
	chatHub *websocket.Hub,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		productController:  productController,
		cartController:     cartController,
		wishlistController: wishlistController,
		newsController:     newsController,
		chatController:     chatController,
		chatHub:            chatHub,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "LUXE API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetProfile)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateProfile)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/filters", r.productController.GetFilterOptions)
			products.GET("/search", r.productController.SearchProducts)
			products.GET("/compare", r.productController.CompareProducts)
			products.GET("/:id", r.productController.GetProduct)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.PUT("/:id", r.cartController.UpdateCartItem)
			cart.DELETE("/:id", r.cartController.RemoveFromCart)
			cart.DELETE("", r.cartController.ClearCart)
		}

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", r.wishlistController.GetWishlist)
			wishlist.POST("", r.wishlistController.AddToWishlist)
			wishlist.GET("/:id", r.wishlistController.CheckWishlisted)
			wishlist.DELETE("/:id", r.wishlistController.RemoveFromWishlist)
			wishlist.DELETE("", r.wishlistController.ClearWishlist)
		}

		news := v1.Group("/news")
		{
			news.GET("", r.newsController.ListArticles)
			news.GET("/featured", r.newsController.GetFeatured)
			news.GET("/:id", r.newsController.GetArticle)
		}

		chat := v1.Group("/chat")
		{
			chat.GET("/greeting", r.chatController.GetGreeting)
			chat.POST("", r.chatController.SendMessage)
			chat.GET("/ws", websocket.Handler(r.chatHub))
		}
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
