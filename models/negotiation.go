package models

import "time"

// Phase is the current step of a scheduling negotiation.
type Phase string

const (
	PhasePickingPrimaryDate        Phase = "picking_primary_date"
	PhasePickingPrimaryTime        Phase = "picking_primary_time"
	PhaseAwaitingAlternateDecision Phase = "awaiting_alternate_decision"
	PhasePickingAlternateDate      Phase = "picking_alternate_date"
	PhasePickingAlternateTime      Phase = "picking_alternate_time"
	PhaseReadyToSubmit             Phase = "ready_to_submit"
	PhaseSubmitted                 Phase = "submitted"
	PhaseFailed                    Phase = "failed"
)

// SessionMode distinguishes a candidate booking for themselves from an
// operator booking on a candidate's behalf.
type SessionMode string

const (
	ModeSelfService SessionMode = "self_service"
	ModeOperator    SessionMode = "operator"
)

// AlternateDecision is the operator's answer to "offer an alternate slot?".
// The zero value means the question has not been answered yet.
type AlternateDecision string

const (
	AlternateUnset AlternateDecision = ""
	AlternateYes   AlternateDecision = "yes"
	AlternateNo    AlternateDecision = "no"
)

// NegotiationState is the single source of truth for one scheduling session.
// It lives in the session cache for the duration of the negotiation and is
// discarded on submission, cancellation, or expiry.
type NegotiationState struct {
	SessionID  string      `json:"sessionId"`
	Mode       SessionMode `json:"mode"`
	EmployeeID string      `json:"employeeId"` // Interviewer being booked
	TimeZone   string      `json:"timeZone"`   // Display zone for this session

	Phase            Phase             `json:"phase"`
	ActiveDate       string            `json:"activeDate,omitempty"` // Date currently being viewed
	Primary          *SlotSelection    `json:"primary,omitempty"`
	AlternateOffered AlternateDecision `json:"alternateOffered,omitempty"`
	Alternate        *SlotSelection    `json:"alternate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
