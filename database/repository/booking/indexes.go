package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the booking collections.
// The unique index on blocked_slots is the authority that prevents two
// concurrent submissions from reserving the same slot.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	blockedModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employee_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "system_time", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_employee_slot"),
		},
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetName("booking_id_idx"),
		},
	}
	if _, err := repo.blockedColl.Indexes().CreateMany(ctx, blockedModels); err != nil {
		return fmt.Errorf("failed to create blocked_slots indexes: %w", err)
	}

	bookingModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "employee_id", Value: 1},
				{Key: "primary.date", Value: 1},
			},
			Options: options.Index().SetName("employee_primary_date_idx"),
		},
	}
	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, bookingModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
