package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type statsCollection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

type StatsController struct {
	users    statsCollection
	menu     statsCollection
	payments statsCollection
}

func NewStatsController(users, menu, payments statsCollection) *StatsController {
	return &StatsController{users: users, menu: menu, payments: payments}
}

// AdminStats returns the dashboard headline numbers: user count, menu item
// count, order count and total revenue. Revenue is summed store-side and
// formatted to two decimals.
func (sc *StatsController) AdminStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		users, err := sc.users.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing stats"})
			return
		}

		menuItems, err := sc.menu.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing stats"})
			return
		}

		orders, err := sc.payments.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing stats"})
			return
		}

		// An empty collection yields no group rows, so skip the pipeline
		// when there is nothing to sum.
		revenue := 0.0
		if orders > 0 {
			groupStage := bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			}}}

			cursor, err := sc.payments.Aggregate(ctx, mongo.Pipeline{groupStage})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing stats"})
				return
			}

			var revenueRows []bson.M
			if err = cursor.All(ctx, &revenueRows); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing stats"})
				return
			}
			if len(revenueRows) > 0 {
				revenue = asFloat(revenueRows[0]["totalRevenue"])
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"users":        users,
			"menuItems":    menuItems,
			"orders":       orders,
			"totalRevenue": fmt.Sprintf("%.2f", revenue),
		})
	}
}

// OrderStats expands every payment's purchased menu item ids, joins each to
// its menu record and rolls the result up by category. Payments referencing
// a deleted menu item contribute nothing: the join drops them.
func (sc *StatsController) OrderStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		unwindStage := bson.D{{Key: "$unwind", Value: "$menuItemIds"}}

		// menuItemIds are hex strings while menu _id is an ObjectId, so the
		// lookup needs the pipeline form with $toObjectId.
		lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "let", Value: bson.D{{Key: "menuItemId", Value: "$menuItemIds"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$_id", bson.D{{Key: "$toObjectId", Value: "$$menuItemId"}}}},
					}},
				}}},
			}},
			{Key: "as", Value: "menuItems"},
		}}}

		unwindMenuStage := bson.D{{Key: "$unwind", Value: "$menuItems"}}

		groupStage := bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}}

		projectStage := bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}}

		cursor, err := sc.payments.Aggregate(ctx, mongo.Pipeline{
			unwindStage,
			lookupStage,
			unwindMenuStage,
			groupStage,
			projectStage,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing order stats"})
			return
		}

		var stats []bson.M
		if err = cursor.All(ctx, &stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error occurred while computing order stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// asFloat widens the numeric types the driver may hand back for a $sum.
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
