package opRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the op_bookings collection.
func (r *mongoOPRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// OP numbers are unique within a day
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "op_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_date_op_number"),
		},
		// Primary "today" query pattern
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("date_created_idx"),
		},
		// Queue lookups by status in creation order
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("status_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create op booking indexes: %w", err)
	}
	return nil
}
