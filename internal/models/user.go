package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Known role values carried by users and actors.
const (
	RoleManager    = "manager"
	RoleSuperadmin = "superadmin"
)

// User is a document in the users collection. The collection is owned by an
// external service; this API only reads it to resolve product creators.
type User struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// Actor is the identity performing a request, supplied by the upstream
// auth gateway. It carries at least an id and a role.
type Actor struct {
	ID    primitive.ObjectID `json:"id" bson:"id"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}
