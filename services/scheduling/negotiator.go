package scheduling

import (
	"time"

	"hireflow/config"
	"hireflow/models"

	"github.com/google/uuid"
)

// NewNegotiation creates the initial state for a scheduling session.
func NewNegotiation(mode models.SessionMode, employeeID, zone string) *models.NegotiationState {
	return &models.NegotiationState{
		SessionID:  uuid.New().String(),
		Mode:       mode,
		EmployeeID: employeeID,
		TimeZone:   zone,
		Phase:      models.PhasePickingPrimaryDate,
		CreatedAt:  time.Now(),
	}
}

// validateDate applies the date-validity predicate: parseable, not in the
// past, not a weekend, not in the externally supplied unavailable set. Dates
// are judged on the reference zone's calendar.
func validateDate(date string, now time.Time, unavailable map[string]bool) error {
	loc, err := time.LoadLocation(config.AppConfig.ReferenceZone)
	if err != nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return newInvalidDate("date %q is not a valid calendar date", date)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return newInvalidDate("date %s is in the past", date)
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return newInvalidDate("date %s falls on a weekend", date)
	}
	if unavailable[date] {
		return newInvalidDate("date %s is not available for interviews", date)
	}
	return nil
}

// applyDateChoice transitions a picking-date phase to the matching
// picking-time phase. Invalid choices are rejected with no state change.
func applyDateChoice(st *models.NegotiationState, date string, now time.Time, unavailable map[string]bool) error {
	if st.Phase != models.PhasePickingPrimaryDate && st.Phase != models.PhasePickingAlternateDate {
		return newInvalidAction("cannot choose a date in phase %s", st.Phase)
	}
	if err := validateDate(date, now, unavailable); err != nil {
		return err
	}

	st.ActiveDate = date
	if st.Phase == models.PhasePickingPrimaryDate {
		st.Phase = models.PhasePickingPrimaryTime
	} else {
		st.Phase = models.PhasePickingAlternateTime
	}
	return nil
}

// applyTimeChoice stores the chosen slot as primary or alternate and
// advances. Selecting an unavailable slot is refused without a phase change,
// as is any slot outside the working-hours window.
func applyTimeChoice(st *models.NegotiationState, slot models.CandidateSlot, hours models.WorkingHours) error {
	if st.Phase != models.PhasePickingPrimaryTime && st.Phase != models.PhasePickingAlternateTime {
		return newInvalidAction("cannot choose a time in phase %s", st.Phase)
	}
	if !slot.Available {
		return newSlotUnavailable("slot %s %s is not available", slot.Date, slot.SystemTime)
	}
	if !withinWorkingHours(slot.SystemTime, hours) {
		return newSlotUnavailable("slot time %s is outside working hours", slot.SystemTime)
	}

	selection := &models.SlotSelection{
		Date:       slot.Date,
		SystemTime: slot.SystemTime,
		TimeZone:   st.TimeZone,
	}

	if st.Phase == models.PhasePickingPrimaryTime {
		st.Primary = selection
		if st.Mode == models.ModeOperator {
			st.Phase = models.PhaseAwaitingAlternateDecision
		} else {
			st.Phase = models.PhaseReadyToSubmit
		}
	} else {
		// An alternate is only reachable once a primary is set; equality
		// with the primary is permitted.
		st.Alternate = selection
		st.Phase = models.PhaseReadyToSubmit
	}
	st.ActiveDate = ""
	return nil
}

// applyAlternateDecision records the operator's answer to "offer alternate?".
func applyAlternateDecision(st *models.NegotiationState, offer bool) error {
	if st.Phase != models.PhaseAwaitingAlternateDecision {
		return newInvalidAction("no alternate decision pending in phase %s", st.Phase)
	}
	if offer {
		st.AlternateOffered = models.AlternateYes
		st.Phase = models.PhasePickingAlternateDate
	} else {
		st.AlternateOffered = models.AlternateNo
		st.Phase = models.PhaseReadyToSubmit
	}
	return nil
}

// applyEditPrimary rewinds to primary date picking. The alternate is cleared
// too — it is meaningless without the primary it was offered against.
func applyEditPrimary(st *models.NegotiationState) error {
	switch st.Phase {
	case models.PhasePickingPrimaryDate, models.PhaseSubmitted:
		return newInvalidAction("cannot edit primary in phase %s", st.Phase)
	}
	st.Primary = nil
	st.Alternate = nil
	st.AlternateOffered = models.AlternateUnset
	st.ActiveDate = ""
	st.Phase = models.PhasePickingPrimaryDate
	return nil
}

// applyEditAlternate rewinds to alternate date picking, clearing only the
// alternate selection.
func applyEditAlternate(st *models.NegotiationState) error {
	switch st.Phase {
	case models.PhasePickingAlternateDate, models.PhasePickingAlternateTime,
		models.PhaseReadyToSubmit, models.PhaseFailed:
	default:
		return newInvalidAction("cannot edit alternate in phase %s", st.Phase)
	}
	if st.Mode != models.ModeOperator || st.AlternateOffered != models.AlternateYes {
		return newInvalidAction("no alternate offer to edit")
	}
	st.Alternate = nil
	st.ActiveDate = ""
	st.Phase = models.PhasePickingAlternateDate
	return nil
}
