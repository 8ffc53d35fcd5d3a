package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AskatAsh/Bistro-Boss-Server/models"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

// menuStore is the slice of *mongo.Collection the menu handlers use.
type menuStore interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type MenuController struct {
	menu menuStore
}

func NewMenuController(menu menuStore) *MenuController {
	return &MenuController{menu: menu}
}

// GetMenus returns the full menu collection.
func (mc *MenuController) GetMenus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		cursor, err := mc.menu.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing menu items"})
			return
		}

		var allMenus []bson.M
		if err = cursor.All(ctx, &allMenus); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing menu items"})
			return
		}

		c.JSON(http.StatusOK, allMenus)
	}
}

// GetMenu returns a single menu item by its id.
func (mc *MenuController) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid menu item id"})
			return
		}

		var menuItem models.MenuItem
		err = mc.menu.FindOne(ctx, bson.M{"_id": id}).Decode(&menuItem)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while fetching the menu item"})
			return
		}

		c.JSON(http.StatusOK, menuItem)
	}
}

// CreateMenu inserts a new menu item. Admin only.
func (mc *MenuController) CreateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var menuItem models.MenuItem
		if err := c.ShouldBindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := validate.Struct(menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		menuItem.ID = primitive.NewObjectID()

		result, err := mc.menu.InsertOne(ctx, menuItem)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "menu item was not created"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UpdateMenu applies a partial update to a menu item. Admin only.
func (mc *MenuController) UpdateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid menu item id"})
			return
		}

		var menuItem models.MenuItem
		if err := c.ShouldBindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var updateObj primitive.D
		if menuItem.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: menuItem.Name})
		}
		if menuItem.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "category", Value: menuItem.Category})
		}
		if menuItem.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: menuItem.Price})
		}
		if menuItem.Image != nil {
			updateObj = append(updateObj, bson.E{Key: "image", Value: menuItem.Image})
		}
		if menuItem.Recipe != nil {
			updateObj = append(updateObj, bson.E{Key: "recipe", Value: menuItem.Recipe})
		}

		if len(updateObj) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "no updatable fields provided"})
			return
		}

		result, err := mc.menu.UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "menu item update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "menu item not found"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteMenu removes a menu item by its id. Admin only.
func (mc *MenuController) DeleteMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid menu item id"})
			return
		}

		result, err := mc.menu.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "menu item delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "menu item not found"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
