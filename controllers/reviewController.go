package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewStore interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

type ReviewController struct {
	reviews reviewStore
}

func NewReviewController(reviews reviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// GetReviews returns the full reviews collection. There is no write route;
// reviews are seeded externally.
func (rc *ReviewController) GetReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		cursor, err := rc.reviews.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing reviews"})
			return
		}

		var allReviews []bson.M
		if err = cursor.All(ctx, &allReviews); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while listing reviews"})
			return
		}

		c.JSON(http.StatusOK, allReviews)
	}
}
