package models

import "time"

// BlockedInterval marks a slot already reserved in the booking ledger.
// Uniqueness key is (employee_id, date, system_time).
type BlockedInterval struct {
	EmployeeID string    `bson:"employee_id" json:"employee_id"` // Interviewer whose slot is taken
	Date       string    `bson:"date" json:"date"`               // "2006-01-02"
	SystemTime string    `bson:"system_time" json:"system_time"` // "15:00:00", reference zone
	BookingID  string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"` // e.g., "booked", "manual block"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
