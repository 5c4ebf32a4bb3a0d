package scheduling

import (
	"errors"
	"fmt"
)

// SlotRole identifies which selection an error refers to.
type SlotRole string

const (
	RolePrimary   SlotRole = "primary"
	RoleAlternate SlotRole = "alternate"
)

// Error codes for the scheduling taxonomy.
const (
	CodeInvalidDate     = "invalidDate"     // date fails the validity predicate
	CodeSlotUnavailable = "slotUnavailable" // slot not available at selection time
	CodeInvalidAction   = "invalidAction"   // action not legal in the current phase
	CodeValidation      = "validationError" // missing/malformed identity fields
	CodeSlotConflict    = "slotConflict"    // authoritative re-check found the slot taken
	CodeStorage         = "storageError"    // booking write failed
	CodeNotification    = "notificationError"
	CodeSessionNotFound = "sessionNotFound"
)

// SchedulingError carries a stable code alongside the message. Slot is set
// for conflicts so the caller knows which picking state to return to.
type SchedulingError struct {
	Code    string
	Message string
	Slot    SlotRole
	Err     error
}

func (e *SchedulingError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Slot, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SchedulingError) Unwrap() error { return e.Err }

func newInvalidDate(format string, args ...any) error {
	return &SchedulingError{Code: CodeInvalidDate, Message: fmt.Sprintf(format, args...)}
}

func newSlotUnavailable(format string, args ...any) error {
	return &SchedulingError{Code: CodeSlotUnavailable, Message: fmt.Sprintf(format, args...)}
}

func newInvalidAction(format string, args ...any) error {
	return &SchedulingError{Code: CodeInvalidAction, Message: fmt.Sprintf(format, args...)}
}

func newValidationError(format string, args ...any) error {
	return &SchedulingError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func newSlotConflict(role SlotRole, date, systemTime string) error {
	return &SchedulingError{
		Code:    CodeSlotConflict,
		Slot:    role,
		Message: fmt.Sprintf("slot %s %s is no longer available", date, systemTime),
	}
}

func newStorageError(err error) error {
	return &SchedulingError{Code: CodeStorage, Message: "failed to persist booking", Err: err}
}

// ErrCode reports the scheduling error code carried by err, or "".
func ErrCode(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// ConflictRole reports which selection a SlotConflict refers to, or "".
func ConflictRole(err error) SlotRole {
	var se *SchedulingError
	if errors.As(err, &se) && se.Code == CodeSlotConflict {
		return se.Slot
	}
	return ""
}
