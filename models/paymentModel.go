package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. Append-only: no route updates or
// deletes these documents.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         *string            `bson:"email" json:"email" validate:"required,email"`
	Price         *float64           `bson:"price" json:"price" validate:"required"`
	TransactionID *string            `bson:"transactionId" json:"transactionId" validate:"required"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds" validate:"required"`
	MenuItemIDs   []string           `bson:"menuItemIds" json:"menuItemIds" validate:"required"`
	Status        *string            `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}

// CleanupFailure is written to the failed_cleanups collection when the cart
// sweep after a successful payment insert fails. The carts it names still
// exist and need manual removal.
type CleanupFailure struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentID primitive.ObjectID `bson:"paymentId" json:"paymentId"`
	CartIDs   []string           `bson:"cartIds" json:"cartIds"`
	Reason    string             `bson:"reason" json:"reason"`
	Date      time.Time          `bson:"date" json:"date"`
}
