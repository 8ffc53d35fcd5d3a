package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one menu item placed in a user's cart. Deleted explicitly or
// swept away when a payment referencing it is recorded.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      *string            `bson:"email" json:"email" validate:"required,email"`
	MenuItemID *string            `bson:"menuItemId" json:"menuItemId" validate:"required"`
	Name       *string            `bson:"name" json:"name" validate:"required"`
	Price      *float64           `bson:"price" json:"price" validate:"required"`
	Image      *string            `bson:"image" json:"image"`
}
