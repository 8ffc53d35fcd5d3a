package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/AskatAsh/Bistro-Boss-Server/controllers"
)

func PaymentRoutes(router *gin.Engine, payments *controller.PaymentController, auth gin.HandlerFunc) {
	router.POST("/create-payment-intent", payments.CreatePaymentIntent())
	router.POST("/payments", auth, payments.RecordPayment())
	router.GET("/payments", auth, payments.GetPayments())
}
