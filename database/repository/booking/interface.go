package bookingRepo

import (
	"context"
	"fmt"

	"hireflow/models"
)

// SlotTakenError reports a uniqueness violation on (employee, date, systemTime)
// during a guarded write. Callers treat it identically to a conflict found by
// re-validation.
type SlotTakenError struct {
	EmployeeID string
	Date       string
	SystemTime string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s already taken for employee %s", e.Date, e.SystemTime, e.EmployeeID)
}

// BookingRepository defines access to the externally owned booking ledger.
type BookingRepository interface {
	// GetBlockedSlots returns every reserved interval for an employee on a date.
	GetBlockedSlots(ctx context.Context, employeeID, date string) ([]models.BlockedInterval, error)

	// PersistBooking durably writes a booking and reserves its slot(s) in the
	// ledger in one transaction. Returns *SlotTakenError if a chosen slot is
	// already reserved.
	PersistBooking(ctx context.Context, booking *models.InterviewBooking) error

	GetByID(ctx context.Context, bookingID string) (*models.InterviewBooking, error)
	ListByDate(ctx context.Context, employeeID, date string) ([]models.InterviewBooking, error)

	// CancelBooking flips the booking to cancelled and releases its ledger
	// reservations so the slots become bookable again.
	CancelBooking(ctx context.Context, bookingID string) error

	EnsureIndexes() error
}
