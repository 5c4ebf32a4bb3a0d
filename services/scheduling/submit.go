package scheduling

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "hireflow/database/repository/booking"
	"hireflow/models"
	"hireflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit validates the negotiated result and writes the durable booking.
//
// Availability is re-checked authoritatively here: blocked intervals for the
// chosen date(s) are fetched immediately before persisting, and the ledger's
// uniqueness guard closes the remaining race window. Rejections leave the
// session state intact; the caller decides whether to rewind (on conflict)
// or simply retry (on a transient storage error).
func (e *DefaultSchedulingEngine) Submit(ctx context.Context, sessionID string, identity models.Identity) (*SubmitResult, error) {
	st, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// A failed attempt stays submittable; everything earlier does not.
	if st.Phase != models.PhaseReadyToSubmit && st.Phase != models.PhaseFailed {
		return nil, newInvalidAction("cannot submit in phase %s", st.Phase)
	}
	if st.Primary == nil {
		return nil, newInvalidAction("no primary slot selected")
	}
	if !identityMatchesMode(identity, st.Mode) {
		return nil, newValidationError("identity fields do not match session mode %s", st.Mode)
	}
	if err := validateIdentity(identity); err != nil {
		return nil, err
	}

	if err := e.recheckAvailability(ctx, st); err != nil {
		return nil, err
	}

	booking := e.buildBooking(st, identity)
	if err := e.Repo.PersistBooking(ctx, booking); err != nil {
		var taken *bookingRepo.SlotTakenError
		if errors.As(err, &taken) {
			return nil, newSlotConflict(e.roleOf(st, taken.Date, taken.SystemTime), taken.Date, taken.SystemTime)
		}
		st.Phase = models.PhaseFailed
		if saveErr := e.Sessions.Save(ctx, st); saveErr != nil {
			utils.GetLogger().Error("failed to record failed submission state",
				zap.String("sessionID", sessionID), zap.Error(saveErr))
		}
		return nil, newStorageError(err)
	}

	// The negotiation is finished; the session is discarded regardless of
	// how notification goes.
	st.Phase = models.PhaseSubmitted
	if err := e.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard submitted session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	result := &SubmitResult{Booking: booking, NotificationSent: true}
	if err := e.Notifier.SendBookingNotification(ctx, booking); err != nil {
		// Notification is not transactional with storage: the booking stands.
		utils.GetLogger().Warn("booking notification failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
		result.NotificationSent = false
	}

	utils.GetLogger().Info("booking submitted",
		zap.String("bookingID", booking.ID),
		zap.String("employeeID", booking.EmployeeID),
		zap.String("date", booking.Primary.Date),
		zap.String("systemTime", booking.Primary.SystemTime),
		zap.String("scheduledBy", booking.ScheduledBy))
	return result, nil
}

// recheckAvailability re-fetches blocked intervals for each chosen date and
// fails with a conflict naming the selection that is now taken.
func (e *DefaultSchedulingEngine) recheckAvailability(ctx context.Context, st *models.NegotiationState) error {
	blockedByDate := map[string][]models.BlockedInterval{}
	dates := []string{st.Primary.Date}
	if st.Alternate != nil && st.Alternate.Date != st.Primary.Date {
		dates = append(dates, st.Alternate.Date)
	}
	for _, d := range dates {
		blocked, err := e.Repo.GetBlockedSlots(ctx, st.EmployeeID, d)
		if err != nil {
			return newStorageError(fmt.Errorf("availability re-check failed: %w", err))
		}
		blockedByDate[d] = blocked
	}

	isBlocked := func(sel *models.SlotSelection) bool {
		for _, b := range blockedByDate[sel.Date] {
			if b.SystemTime == sel.SystemTime {
				return true
			}
		}
		return false
	}

	if isBlocked(st.Primary) {
		return newSlotConflict(RolePrimary, st.Primary.Date, st.Primary.SystemTime)
	}
	if st.Alternate != nil && isBlocked(st.Alternate) {
		return newSlotConflict(RoleAlternate, st.Alternate.Date, st.Alternate.SystemTime)
	}
	return nil
}

func (e *DefaultSchedulingEngine) buildBooking(st *models.NegotiationState, identity models.Identity) *models.InterviewBooking {
	booking := &models.InterviewBooking{
		ID:             uuid.New().String(),
		EmployeeID:     st.EmployeeID,
		Primary:        *st.Primary,
		Alternate:      st.Alternate,
		CandidateName:  identity.ContactName(),
		CandidateEmail: identity.ContactEmail(),
		Status:         models.BookingStatusScheduled,
		ScheduledBy:    identity.ScheduledBy(),
		CreatedAt:      e.now(),
	}
	if self, ok := identity.(models.SelfServiceIdentity); ok {
		booking.CandidatePhone = self.Phone
		booking.Niche = self.Niche
		booking.ResumeURL = self.ResumeURL
	}
	return booking
}

// roleOf maps a taken (date, systemTime) back to the selection it belongs
// to, so the caller knows which picking state to reopen.
func (e *DefaultSchedulingEngine) roleOf(st *models.NegotiationState, date, systemTime string) SlotRole {
	if st.Alternate != nil && st.Alternate.Date == date && st.Alternate.SystemTime == systemTime &&
		!(st.Primary.Date == date && st.Primary.SystemTime == systemTime) {
		return RoleAlternate
	}
	return RolePrimary
}
