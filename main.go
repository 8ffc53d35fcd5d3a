// Bistro Boss ordering backend: Gin for routing, MongoDB for storage,
// Stripe for payments.
package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AskatAsh/Bistro-Boss-Server/config"
	"github.com/AskatAsh/Bistro-Boss-Server/controllers"
	"github.com/AskatAsh/Bistro-Boss-Server/database"
	"github.com/AskatAsh/Bistro-Boss-Server/middleware"
	"github.com/AskatAsh/Bistro-Boss-Server/routes"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("could not connect to mongodb: ", err)
	}
	log.Println("connected to mongodb")

	menuCollection := database.OpenCollection(client, cfg.DatabaseName, "menu")
	reviewCollection := database.OpenCollection(client, cfg.DatabaseName, "reviews")
	cartCollection := database.OpenCollection(client, cfg.DatabaseName, "carts")
	userCollection := database.OpenCollection(client, cfg.DatabaseName, "users")
	paymentCollection := database.OpenCollection(client, cfg.DatabaseName, "payments")
	cleanupCollection := database.OpenCollection(client, cfg.DatabaseName, "failed_cleanups")

	auth := middleware.Authentication(cfg.JWTSecret)
	admin := middleware.RequireAdmin(userCollection)

	menuController := controllers.NewMenuController(menuCollection)
	reviewController := controllers.NewReviewController(reviewCollection)
	cartController := controllers.NewCartController(cartCollection)
	userController := controllers.NewUserController(userCollection, cfg.JWTSecret)
	paymentController := controllers.NewPaymentController(
		paymentCollection,
		cartCollection,
		cleanupCollection,
		controllers.NewStripeGateway(cfg.StripeKey),
	)
	statsController := controllers.NewStatsController(userCollection, menuCollection, paymentCollection)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro Boss Server is Running...")
	})

	routes.MenuRoutes(router, menuController, auth, admin)
	routes.ReviewRoutes(router, reviewController)
	routes.CartRoutes(router, cartController, auth)
	routes.UserRoutes(router, userController, auth, admin)
	routes.PaymentRoutes(router, paymentController, auth)
	routes.StatsRoutes(router, statsController, auth, admin)

	log.Println("server is running on port:", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
