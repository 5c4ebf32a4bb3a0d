package models

// BookingNotifyPayload is the task payload queued when a booking is persisted
// and delivered best-effort to the agency's notification webhook.
type BookingNotifyPayload struct {
	BookingID      string `json:"bookingId"`
	EmployeeID     string `json:"employeeId"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	PrimaryDate    string `json:"primaryDate"`
	PrimaryTime    string `json:"primaryTime"`
	AlternateDate  string `json:"alternateDate,omitempty"`
	AlternateTime  string `json:"alternateTime,omitempty"`
	ScheduledBy    string `json:"scheduledBy"`
}
