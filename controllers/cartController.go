package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AskatAsh/Bistro-Boss-Server/models"
)

type cartStore interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type CartController struct {
	carts cartStore
}

func NewCartController(carts cartStore) *CartController {
	return &CartController{carts: carts}
}

// GetCarts lists the cart items belonging to the email given as a query
// parameter. The route carries the token requirement; there is no ownership
// check beyond token presence.
func (cc *CartController) GetCarts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		email := c.Query("email")

		cursor, err := cc.carts.Find(ctx, bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing cart items"})
			return
		}

		var cartItems []bson.M
		if err = cursor.All(ctx, &cartItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing cart items"})
			return
		}

		c.JSON(http.StatusOK, cartItems)
	}
}

// CreateCart adds a menu item to a cart.
func (cc *CartController) CreateCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var cartItem models.CartItem
		if err := c.ShouldBindJSON(&cartItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := validate.Struct(cartItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cartItem.ID = primitive.NewObjectID()

		result, err := cc.carts.InsertOne(ctx, cartItem)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "cart item was not created"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteCart removes a single cart item by its id.
func (cc *CartController) DeleteCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid cart item id"})
			return
		}

		result, err := cc.carts.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "cart item delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "cart item not found"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
