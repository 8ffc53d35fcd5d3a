package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a dish on the menu. Seeded externally, mutated only through
// the admin menu routes.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category *string            `bson:"category" json:"category" validate:"required"`
	Price    *float64           `bson:"price" json:"price" validate:"required"`
	Image    *string            `bson:"image" json:"image"`
	Recipe   *string            `bson:"recipe" json:"recipe"`
}
