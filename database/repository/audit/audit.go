package auditRepo

import (
	"context"
	"fmt"
	"time"

	"clinicdesk/database"
	"clinicdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists and reads desk activity entries.
type Repository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error)
}

// MongoAuditRepo is the MongoDB-backed Repository.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

func NewMongoAuditRepo() *MongoAuditRepo {
	return &MongoAuditRepo{
		coll: database.MongoClient.Database("clinicdesk").Collection("audit"),
	}
}

func (repo *MongoAuditRepo) Insert(ctx context.Context, entry models.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := repo.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error inserting audit entry %s: %w", entry.ID, err)
	}
	return nil
}

// Recent returns the newest entries, newest first.
func (repo *MongoAuditRepo) Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.AuditEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding audit entries: %w", err)
	}
	return entries, nil
}
