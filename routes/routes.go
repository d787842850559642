package routes

import (
	"online-store/config"
	"online-store/controllers"
	"online-store/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	catalogCtrl := controllers.NewCatalogController()
	cartCtrl := controllers.NewCartController()
	adminCtrl := controllers.NewAdminController()

	sessions := middleware.NewSessionStore(config.RedisClient, config.AppConfig.SessionTTL)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", catalogCtrl.GetAllCategories)
	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)

	// Cart routes serve anonymous and signed-in visitors alike, so they sit
	// behind the session cookie plus optional auth rather than a hard gate.
	cart := router.Group("/cart")
	cart.Use(middleware.SessionMiddleware(sessions), middleware.OptionalAuthMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products", adminCtrl.ListProducts)
		admin.POST("/products", adminCtrl.CreateProduct)
		admin.DELETE("/products/:id", adminCtrl.DeleteProduct)

		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)
	}

	router.Static("/uploads", "./uploads")
}
