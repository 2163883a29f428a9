package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions recorded for product mutations.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog is a best-effort record of a mutation in the audit_logs
// collection: who did what to which entity.
type AuditLog struct {
	ID        primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Action    string                 `json:"action" bson:"action"`
	Entity    string                 `json:"entity" bson:"entity"`
	EntityID  primitive.ObjectID     `json:"entityId" bson:"entity_id"`
	User      *Actor                 `json:"user,omitempty" bson:"user,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
}
