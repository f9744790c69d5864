package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"namestrings/internal/config"
	"namestrings/internal/database"
	"namestrings/internal/handlers"
	"namestrings/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureCouponIndexes(db); err != nil {
		log.Printf("coupon index warning: %v", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Static("/public", "./public")

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Name Strings API"})
	})

	api.POST("/auth/register", handlers.Register(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL, config.AppEnv.RefreshTokenTTL))
	api.POST("/auth/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL, config.AppEnv.RefreshTokenTTL))
	api.GET("/auth/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(db))
	api.POST("/auth/refresh", handlers.Refresh(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL, config.AppEnv.RefreshTokenTTL))
	api.POST("/auth/logout", handlers.Logout(db))

	api.GET("/products", handlers.GetProducts(db))
	api.GET("/products/:slug", handlers.GetProductBySlug(db))
	api.GET("/categories", handlers.GetCategories(db))
	api.GET("/settings", handlers.GetSettings(db))

	api.POST("/orders", handlers.CreateOrder(db, config.AppEnv.JWTSecret))
	api.GET("/orders", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMyOrders(db))
	api.GET("/orders/:id", handlers.GetOrder(db, config.AppEnv.JWTSecret))
	api.POST("/orders/:id/submit-payment", handlers.SubmitPayment(db))

	api.POST("/coupons/validate", handlers.ValidateCoupon(db))

	api.POST("/payment/gateway/create-order", handlers.CreateGatewayOrder(db, config.AppEnv))
	api.POST("/payment/gateway/verify", handlers.VerifyGatewayPayment(db, config.AppEnv))

	api.POST("/admin/setup", handlers.SetupAdmin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/dashboard", handlers.GetDashboard(db))

		admin.GET("/orders", handlers.GetAdminOrders(db))
		admin.PUT("/orders/:id", handlers.UpdateOrder(db))
		admin.POST("/orders/:id/approve-payment", handlers.ApprovePayment(db))
		admin.POST("/orders/:id/reject-payment", handlers.RejectPayment(db))

		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))
		admin.POST("/products/:id/image", handlers.UploadProductImage(db))

		admin.GET("/categories", handlers.GetAllCategories(db))
		admin.POST("/categories", handlers.CreateCategory(db))
		admin.PUT("/categories/:id", handlers.UpdateCategory(db))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

		admin.GET("/users", handlers.GetAllUsers(db))
		admin.PUT("/users/:id", handlers.UpdateUser(db))

		admin.GET("/coupons", handlers.GetAllCoupons(db))
		admin.POST("/coupons", handlers.CreateCoupon(db))
		admin.DELETE("/coupons/:id", handlers.DeleteCoupon(db))

		admin.GET("/settings", handlers.GetAdminSettings(db))
		admin.PUT("/settings", handlers.UpdateSettings(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
