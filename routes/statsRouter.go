package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/AskatAsh/Bistro-Boss-Server/controllers"
)

func StatsRoutes(router *gin.Engine, stats *controller.StatsController, auth gin.HandlerFunc, admin gin.HandlerFunc) {
	router.GET("/admin-stats", auth, admin, stats.AdminStats())
	router.GET("/order-stats", auth, admin, stats.OrderStats())
}
