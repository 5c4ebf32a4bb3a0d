package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hireflow/database"
	"hireflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	blockedColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("hireflow")
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		blockedColl: db.Collection("blocked_slots"),
	}
}

// PersistBooking inserts the booking record and its ledger reservations in one
// transaction. The unique index on (employee_id, date, system_time) is the
// atomic guard against two sessions taking the same slot: a duplicate key on
// either reservation aborts the transaction, so no partial booking survives.
func (repo *MongoBookingRepo) PersistBooking(ctx context.Context, booking *models.InterviewBooking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	reservations := []models.SlotSelection{booking.Primary}
	if alt := booking.Alternate; alt != nil &&
		!(alt.Date == booking.Primary.Date && alt.SystemTime == booking.Primary.SystemTime) {
		// An alternate equal to the primary is permitted and needs only one
		// ledger reservation.
		reservations = append(reservations, *alt)
	}

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		for _, sel := range reservations {
			block := models.BlockedInterval{
				EmployeeID: booking.EmployeeID,
				Date:       sel.Date,
				SystemTime: sel.SystemTime,
				BookingID:  booking.ID,
				Reason:     "booked",
				CreatedAt:  booking.CreatedAt,
			}
			if _, err := repo.blockedColl.InsertOne(sc, block); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					return &SlotTakenError{
						EmployeeID: booking.EmployeeID,
						Date:       sel.Date,
						SystemTime: sel.SystemTime,
					}
				}
				return fmt.Errorf("reserve slot failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		var taken *SlotTakenError
		if errors.As(err, &taken) {
			return taken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// CancelBooking flips the record to cancelled and frees its reservations.
func (repo *MongoBookingRepo) CancelBooking(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": models.BookingStatusScheduled}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}

	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	if _, err := repo.blockedColl.DeleteMany(ctx, bson.M{"booking_id": bookingID}); err != nil {
		return fmt.Errorf("failed to release reservations for booking %s: %w", bookingID, err)
	}
	return nil
}
