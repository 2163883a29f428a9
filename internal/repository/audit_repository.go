package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"product-admin/internal/models"
)

const auditTimeout = 3 * time.Second

// AuditRepository writes audit entries to the audit_logs collection.
// Writes are best-effort: callers log failures and never fail the request.
type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{collection: db.Collection("audit_logs")}
}

func (r *AuditRepository) Record(ctx context.Context, entry *models.AuditLog) error {
	ctx, cancel := context.WithTimeout(ctx, auditTimeout)
	defer cancel()

	entry.Timestamp = time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}
