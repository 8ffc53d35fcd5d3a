package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AskatAsh/Bistro-Boss-Server/models"
)

type paymentStore interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type cartSweeper interface {
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type cleanupLog interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// IntentCreator requests a client-usable payment handle from the external
// processor. A single best-effort call, no retry.
type IntentCreator interface {
	CreateIntent(amountMinorUnits int64, currency string) (clientSecret string, err error)
}

type PaymentController struct {
	payments paymentStore
	carts    cartSweeper
	failures cleanupLog
	gateway  IntentCreator
}

func NewPaymentController(payments paymentStore, carts cartSweeper, failures cleanupLog, gateway IntentCreator) *PaymentController {
	return &PaymentController{payments: payments, carts: carts, failures: failures, gateway: gateway}
}

// CreatePaymentIntent converts the given price to minor currency units and
// asks the processor for a client secret.
func (pc *PaymentController) CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Price float64 `json:"price"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		// price * 100 truncated, matching what the client-side widget expects
		amount := int64(body.Price * 100)

		clientSecret, err := pc.gateway.CreateIntent(amount, "usd")
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": "payment intent was not created"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}

// RecordPayment stores a completed payment and sweeps the cart items it
// references. The two writes are not transactional; a failed sweep after a
// successful insert is recorded in the failed_cleanups collection so the
// stale cart items can be removed later.
func (pc *PaymentController) RecordPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var payment models.Payment
		if err := c.ShouldBindJSON(&payment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if payment.Email == nil {
			email := c.GetString("email")
			payment.Email = &email
		}

		if err := validate.Struct(payment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cartIDs := make([]primitive.ObjectID, 0, len(payment.CartIDs))
		for _, hex := range payment.CartIDs {
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid cart item id"})
				return
			}
			cartIDs = append(cartIDs, id)
		}

		payment.ID = primitive.NewObjectID()
		payment.Date = time.Now()
		if payment.Status == nil {
			status := "pending"
			payment.Status = &status
		}

		paymentResult, err := pc.payments.InsertOne(ctx, payment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "payment was not recorded"})
			return
		}

		deleteResult, err := pc.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
		if err != nil {
			// The payment is already in; log a compensation record instead
			// of leaving the stale carts untracked.
			failure := models.CleanupFailure{
				ID:        primitive.NewObjectID(),
				PaymentID: payment.ID,
				CartIDs:   payment.CartIDs,
				Reason:    err.Error(),
				Date:      time.Now(),
			}
			if _, logErr := pc.failures.InsertOne(ctx, failure); logErr != nil {
				log.Printf("checkout: cart sweep failed for payment %s and cleanup record was not written: %v", payment.ID.Hex(), logErr)
			} else {
				log.Printf("checkout: cart sweep failed for payment %s, cleanup recorded: %v", payment.ID.Hex(), err)
			}

			c.JSON(http.StatusInternalServerError, gin.H{
				"message":   "payment recorded but cart cleanup failed",
				"paymentId": payment.ID.Hex(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"paymentResult": paymentResult,
			"deleteResult":  deleteResult,
		})
	}
}

// GetPayments lists payments, optionally filtered by email or id. A caller
// may only filter by its own token email.
func (pc *PaymentController) GetPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		filter := bson.M{}

		if email := c.Query("email"); email != "" {
			if email != c.GetString("email") {
				c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
			filter["email"] = email
		}

		if hex := c.Query("id"); hex != "" {
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment id"})
				return
			}
			filter["_id"] = id
		}

		cursor, err := pc.payments.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing payments"})
			return
		}

		var payments []bson.M
		if err = cursor.All(ctx, &payments); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing payments"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}
