package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a document in the products collection. Name is unique across
// the collection (enforced by a unique index, see database.EnsureIndexes).
// Specs, when present, is a non-empty key-value mapping; update patches
// carrying anything else for specs are sanitized before hitting storage.
type Product struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string                 `json:"name" bson:"name" binding:"required"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Category    string                 `json:"category,omitempty" bson:"category,omitempty"`
	Price       float64                `json:"price,omitempty" bson:"price,omitempty"`
	Specs       map[string]interface{} `json:"specs,omitempty" bson:"specs,omitempty"`
	CreatedBy   primitive.ObjectID     `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" bson:"updated_at"`
}

// CreatorSummary is the reduced projection of the creating user exposed by
// product listings.
type CreatorSummary struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// ProductView is a product with created_by resolved to a creator summary.
// The outer CreatedBy shadows the embedded ObjectID reference in JSON, so
// listings expose only name and email of the creator.
type ProductView struct {
	Product   `bson:",inline"`
	CreatedBy *CreatorSummary `json:"createdBy,omitempty" bson:"creator,omitempty"`
}
