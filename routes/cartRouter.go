package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/AskatAsh/Bistro-Boss-Server/controllers"
)

func CartRoutes(router *gin.Engine, carts *controller.CartController, auth gin.HandlerFunc) {
	router.GET("/carts", auth, carts.GetCarts())
	router.POST("/carts", carts.CreateCart())
	router.DELETE("/carts/:id", carts.DeleteCart())
}
