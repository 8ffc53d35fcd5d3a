package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/AskatAsh/Bistro-Boss-Server/controllers"
)

func UserRoutes(router *gin.Engine, users *controller.UserController, auth gin.HandlerFunc, admin gin.HandlerFunc) {
	router.POST("/jwt", users.IssueToken())
	router.POST("/users", users.CreateUser())
	router.GET("/users", auth, admin, users.GetUsers())
	router.GET("/user/admin", auth, users.CheckAdmin())
	router.PATCH("/users/admin/:id", auth, admin, users.MakeAdmin())
	router.DELETE("/users/:id", auth, admin, users.DeleteUser())
}
