package scheduling

import (
	"context"
	"fmt"

	"hireflow/models"
	"hireflow/utils"

	"go.uber.org/zap"
)

// StartSession opens a new negotiation in the given mode and display zone.
func (e *DefaultSchedulingEngine) StartSession(ctx context.Context, mode models.SessionMode, employeeID, zone string) (*models.NegotiationState, error) {
	if mode != models.ModeSelfService && mode != models.ModeOperator {
		return nil, newValidationError("unknown session mode %q", mode)
	}
	if employeeID == "" {
		return nil, newValidationError("employeeId is required")
	}

	ref := e.Catalog.ResolveUserZone(zone)
	st := NewNegotiation(mode, employeeID, ref.ID)
	if err := e.Sessions.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to start scheduling session: %w", err)
	}

	utils.GetLogger().Info("scheduling session started",
		zap.String("sessionID", st.SessionID),
		zap.String("mode", string(mode)),
		zap.String("zone", ref.ID))
	return st, nil
}

// PickDate applies a date choice and returns the annotated candidate slots
// for that date. The blocked set is fetched fresh every time, including when
// the user returns to a previously viewed date.
func (e *DefaultSchedulingEngine) PickDate(ctx context.Context, sessionID, date string) (*models.NegotiationState, []models.CandidateSlot, error) {
	st, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if err := applyDateChoice(st, date, e.now(), e.UnavailableDates); err != nil {
		return st, nil, err
	}
	if err := e.Sessions.Save(ctx, st); err != nil {
		return nil, nil, fmt.Errorf("failed to save scheduling session: %w", err)
	}

	slots := e.SlotsForDate(ctx, st.EmployeeID, date, st.TimeZone)
	return st, slots, nil
}

// PickTime applies a slot choice for the date currently being viewed.
// Availability is re-checked against a fresh annotated list so the machine
// itself refuses a taken slot even if the UI failed to.
func (e *DefaultSchedulingEngine) PickTime(ctx context.Context, sessionID, systemTime string) (*models.NegotiationState, error) {
	st, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if st.ActiveDate == "" {
		return st, newInvalidAction("no date is being viewed in phase %s", st.Phase)
	}

	var chosen *models.CandidateSlot
	for _, s := range e.SlotsForDate(ctx, st.EmployeeID, st.ActiveDate, st.TimeZone) {
		if s.SystemTime == systemTime {
			chosen = &s
			break
		}
	}
	if chosen == nil {
		return st, newSlotUnavailable("no slot at %s on %s", systemTime, st.ActiveDate)
	}

	if err := applyTimeChoice(st, *chosen, e.Hours); err != nil {
		return st, err
	}
	if err := e.Sessions.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save scheduling session: %w", err)
	}
	return st, nil
}

// DecideAlternate records the operator's answer to "offer an alternate?".
func (e *DefaultSchedulingEngine) DecideAlternate(ctx context.Context, sessionID string, offer bool) (*models.NegotiationState, error) {
	st, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := applyAlternateDecision(st, offer); err != nil {
		return st, err
	}
	if err := e.Sessions.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save scheduling session: %w", err)
	}
	return st, nil
}

// EditPrimary rewinds the session to primary date picking, clearing both
// selections.
func (e *DefaultSchedulingEngine) EditPrimary(ctx context.Context, sessionID string) (*models.NegotiationState, error) {
	st, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := applyEditPrimary(st); err != nil {
		return st, err
	}
	if err := e.Sessions.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save scheduling session: %w", err)
	}
	return st, nil
}

// EditAlternate rewinds the session to alternate date picking, clearing only
// the alternate selection.
func (e *DefaultSchedulingEngine) EditAlternate(ctx context.Context, sessionID string) (*models.NegotiationState, error) {
	st, err := e.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := applyEditAlternate(st); err != nil {
		return st, err
	}
	if err := e.Sessions.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save scheduling session: %w", err)
	}
	return st, nil
}

// CancelSession discards an in-progress negotiation.
func (e *DefaultSchedulingEngine) CancelSession(ctx context.Context, sessionID string) error {
	if err := e.Sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel scheduling session: %w", err)
	}
	return nil
}
