package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/AskatAsh/Bistro-Boss-Server/controllers"
)

func ReviewRoutes(router *gin.Engine, reviews *controller.ReviewController) {
	router.GET("/reviews", reviews.GetReviews())
}
