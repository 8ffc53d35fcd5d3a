package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AskatAsh/Bistro-Boss-Server/helpers"
	"github.com/AskatAsh/Bistro-Boss-Server/models"
)

// UserFinder is the slice of the user collection the admin check needs.
// *mongo.Collection satisfies it.
type UserFinder interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// Authentication verifies the bearer token on protected routes and stores
// the decoded identity on the request context.
func Authentication(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := helpers.ValidateToken(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("name", claims.Name)

		c.Next()
	}
}

// RequireAdmin checks that the authenticated identity's stored role is
// "admin". It must be registered after Authentication, which provides the
// email on the context.
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		email := c.GetString("email")

		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err != nil || user.Role == nil || *user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}
