package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"hireflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetBlockedSlots retrieves all reserved intervals for an employee on a date.
func (repo *MongoBookingRepo) GetBlockedSlots(ctx context.Context, employeeID, date string) ([]models.BlockedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"employee_id": employeeID, "date": date}
	cursor, err := repo.blockedColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching blocked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var blocked []models.BlockedInterval
	for cursor.Next(ctx) {
		var b models.BlockedInterval
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding blocked slot: %w", err)
		}
		blocked = append(blocked, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return blocked, nil
}

// GetByID retrieves a booking record by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.InterviewBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.InterviewBooking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

// ListByDate returns every booking whose primary slot falls on the given date,
// ordered by system time.
func (repo *MongoBookingRepo) ListByDate(ctx context.Context, employeeID, date string) ([]models.InterviewBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"employee_id": employeeID, "primary.date": date}
	opts := options.Find().SetSort(bson.D{{Key: "primary.system_time", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.InterviewBooking
	for cursor.Next(ctx) {
		var b models.InterviewBooking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
