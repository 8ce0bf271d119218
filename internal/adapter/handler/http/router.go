package http

import (
	"github.com/gin-gonic/gin"
	"github.com/hanifwid/printmart/internal/adapter/config"
	"github.com/hanifwid/printmart/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	orderHandler *OrderHandler,
	notificationHandler *NotificationHandler,
	contentHandler *ContentHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	base := NewHandler(logger)
	metrics := NewServerMetrics()
	router.Use(metrics.Middleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)

			profile := user.Group("/profile")
			{
				profile.Use(authCheck(base, tokenService))
				profile.GET("", userHandler.GetProfile)
				profile.PATCH("", userHandler.UpdateProfile)
			}
		}

		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/categories", productHandler.ListCategories)
		api.GET("/banners", contentHandler.ListBanners)
		api.GET("/settings", contentHandler.GetSettings)

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(base, tokenService))
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.ListMyOrders)
		}

		notifications := api.Group("/notifications")
		{
			notifications.Use(authCheck(base, tokenService))
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		admin := api.Group("/admin")
		{
			admin.Use(authCheck(base, tokenService), adminOnly(base))

			admin.GET("/orders", orderHandler.ListOrders)
			admin.GET("/orders/:id", orderHandler.GetOrder)
			admin.PATCH("/orders/:id/status", orderHandler.UpdateOrderStatus)

			admin.POST("/products", productHandler.CreateProduct)
			admin.PATCH("/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)
			admin.POST("/categories", productHandler.CreateCategory)

			admin.POST("/banners", contentHandler.CreateBanner)
			admin.DELETE("/banners/:id", contentHandler.DeleteBanner)
			admin.PATCH("/settings", contentHandler.UpdateSettings)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
