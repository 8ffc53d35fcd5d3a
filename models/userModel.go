package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first login. Role is empty for regular users and
// "admin" for administrators; only the promote route changes it.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  *string            `bson:"name" json:"name" validate:"required"`
	Email *string            `bson:"email" json:"email" validate:"required,email"`
	Role  *string            `bson:"role,omitempty" json:"role,omitempty"`
}

const RoleAdmin = "admin"
