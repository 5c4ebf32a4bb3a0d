package scheduling

import (
	"context"
	"time"

	bookingRepo "hireflow/database/repository/booking"
	"hireflow/models"
	"hireflow/services/notification"
	"hireflow/services/timezone"
)

// SubmitResult is the outcome of a successful submission. NotificationSent
// false means the booking exists but the notification could not be
// dispatched — a degraded success, not a failure.
type SubmitResult struct {
	Booking          *models.InterviewBooking `json:"booking"`
	NotificationSent bool                     `json:"notificationSent"`
}

// SchedulingService drives a scheduling negotiation from an empty selection
// to a durable booking request.
type SchedulingService interface {
	StartSession(ctx context.Context, mode models.SessionMode, employeeID, zone string) (*models.NegotiationState, error)
	PickDate(ctx context.Context, sessionID, date string) (*models.NegotiationState, []models.CandidateSlot, error)
	PickTime(ctx context.Context, sessionID, systemTime string) (*models.NegotiationState, error)
	DecideAlternate(ctx context.Context, sessionID string, offer bool) (*models.NegotiationState, error)
	EditPrimary(ctx context.Context, sessionID string) (*models.NegotiationState, error)
	EditAlternate(ctx context.Context, sessionID string) (*models.NegotiationState, error)
	Submit(ctx context.Context, sessionID string, identity models.Identity) (*SubmitResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultSchedulingEngine is the production scheduling service.
type DefaultSchedulingEngine struct {
	Repo     bookingRepo.BookingRepository
	Sessions SessionStore
	Catalog  *timezone.Catalog
	Notifier notification.Service

	// Per-context configuration supplied by the caller: bookable window and
	// dates the agency has marked off.
	Hours            models.WorkingHours
	UnavailableDates map[string]bool

	// Now is the clock; tests substitute it.
	Now func() time.Time
}

func (e *DefaultSchedulingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
