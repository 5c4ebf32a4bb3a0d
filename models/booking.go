package models

import "time"

// Booking statuses.
const (
	BookingStatusScheduled = "scheduled"
	BookingStatusCancelled = "cancelled"
)

// InterviewBooking is the durable record produced by a finished negotiation.
type InterviewBooking struct {
	ID         string         `bson:"id" json:"id"`                   // UUID
	EmployeeID string         `bson:"employee_id" json:"employeeId"`  // Interviewer booked
	Primary    SlotSelection  `bson:"primary" json:"primary"`         // Preferred interview time
	Alternate  *SlotSelection `bson:"alternate,omitempty" json:"alternate,omitempty"` // Optional second offer

	CandidateName  string `bson:"candidate_name" json:"candidateName"`
	CandidateEmail string `bson:"candidate_email" json:"candidateEmail"`
	CandidatePhone string `bson:"candidate_phone,omitempty" json:"candidatePhone,omitempty"`
	Niche          string `bson:"niche,omitempty" json:"niche,omitempty"`
	ResumeURL      string `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`

	Status      string    `bson:"status" json:"status"`            // "scheduled" or "cancelled"
	ScheduledBy string    `bson:"scheduled_by" json:"scheduledBy"` // "candidate" or "operator"
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
