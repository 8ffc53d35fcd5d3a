package routes

// Routes bind URL paths to their controllers. Store handles and middleware
// are passed in by main rather than captured from package scope.

import (
	"github.com/gin-gonic/gin"

	controller "github.com/AskatAsh/Bistro-Boss-Server/controllers"
)

func MenuRoutes(router *gin.Engine, menu *controller.MenuController, auth gin.HandlerFunc, admin gin.HandlerFunc) {
	router.GET("/menu", menu.GetMenus())
	router.GET("/menu/:id", menu.GetMenu())
	router.POST("/menu", auth, admin, menu.CreateMenu())
	router.PATCH("/menu/:id", auth, admin, menu.UpdateMenu())
	router.DELETE("/menu/:id", auth, admin, menu.DeleteMenu())
}
