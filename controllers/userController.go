package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AskatAsh/Bistro-Boss-Server/helpers"
	"github.com/AskatAsh/Bistro-Boss-Server/models"
)

type userStore interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type UserController struct {
	users  userStore
	secret string
}

func NewUserController(users userStore, secret string) *UserController {
	return &UserController{users: users, secret: secret}
}

// IssueToken signs the posted identity claims and returns a bearer token.
// Called by the client right after a social login.
func (uc *UserController) IssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims struct {
			Email string `json:"email" binding:"required"`
			Name  string `json:"name"`
		}
		if err := c.ShouldBindJSON(&claims); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		token, err := helpers.GenerateToken(claims.Email, claims.Name, uc.secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token was not created"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// CreateUser stores a user on first login. Idempotent by email: a second
// call with a known email inserts nothing and returns a logged-in marker.
func (uc *UserController) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := validate.Struct(user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		count, err := uc.users.CountDocuments(ctx, bson.M{"email": user.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while checking the email"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "loggedin": true})
			return
		}

		user.ID = primitive.NewObjectID()

		result, err := uc.users.InsertOne(ctx, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "user was not created"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetUsers returns all users. Admin only.
func (uc *UserController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		cursor, err := uc.users.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing users"})
			return
		}

		var allUsers []bson.M
		if err = cursor.All(ctx, &allUsers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing users"})
			return
		}

		c.JSON(http.StatusOK, allUsers)
	}
}

// CheckAdmin tells the client whether the given email belongs to an admin.
// A caller may only ask about its own token email.
func (uc *UserController) CheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		email := c.Query("email")
		if email != c.GetString("email") {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		var user models.User
		err := uc.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err != nil && err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while fetching the user"})
			return
		}

		isAdmin := user.Role != nil && *user.Role == models.RoleAdmin
		c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
	}
}

// MakeAdmin promotes a user to the admin role. Admin only.
func (uc *UserController) MakeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
			return
		}

		result, err := uc.users.UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.RoleAdmin}}}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "user update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteUser removes a user by id. Admin only.
func (uc *UserController) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
			return
		}

		result, err := uc.users.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "user delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
