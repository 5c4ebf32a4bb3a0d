package notification

import (
	"context"

	"hireflow/models"
)

// Service dispatches booking notifications. Delivery is best-effort and
// never transactional with the booking write.
type Service interface {
	SendBookingNotification(ctx context.Context, booking *models.InterviewBooking) error
}

// PayloadFor flattens a booking into the notification payload.
func PayloadFor(booking *models.InterviewBooking) models.BookingNotifyPayload {
	p := models.BookingNotifyPayload{
		BookingID:      booking.ID,
		EmployeeID:     booking.EmployeeID,
		CandidateName:  booking.CandidateName,
		CandidateEmail: booking.CandidateEmail,
		PrimaryDate:    booking.Primary.Date,
		PrimaryTime:    booking.Primary.SystemTime,
		ScheduledBy:    booking.ScheduledBy,
	}
	if booking.Alternate != nil {
		p.AlternateDate = booking.Alternate.Date
		p.AlternateTime = booking.Alternate.SystemTime
	}
	return p
}
