package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hireflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidateIdentity = models.SelfServiceIdentity{
	Name:      "Dana Whitfield",
	Email:     "dana.whitfield@example.com",
	Phone:     "+1 415-555-0142",
	Niche:     "warehouse",
	ResumeURL: "https://drive.google.com/file/d/abc123/view",
}

var operatorIdentity = models.OperatorIdentity{
	Name:  "Sam Okafor",
	Email: "sam.okafor@agency.example.com",
}

// selfServiceSession drives a session to ready_to_submit at 10:00 on 2024-06-10.
func selfServiceSession(t *testing.T, engine *DefaultSchedulingEngine) string {
	t.Helper()
	ctx := context.Background()
	st, err := engine.StartSession(ctx, models.ModeSelfService, "emp-1", "UTC")
	require.NoError(t, err)
	_, _, err = engine.PickDate(ctx, st.SessionID, "2024-06-10")
	require.NoError(t, err)
	_, err = engine.PickTime(ctx, st.SessionID, "10:00:00")
	require.NoError(t, err)
	return st.SessionID
}

func TestSubmitSelfService(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	notifier := &fakeNotifier{}
	engine := newTestEngine(ledger, sessions, notifier)

	sessionID := selfServiceSession(t, engine)

	result, err := engine.Submit(ctx, sessionID, candidateIdentity)
	require.NoError(t, err)
	require.NotNil(t, result.Booking)
	assert.True(t, result.NotificationSent)

	b := result.Booking
	assert.Equal(t, "emp-1", b.EmployeeID)
	assert.Equal(t, "2024-06-10", b.Primary.Date)
	assert.Equal(t, "10:00:00", b.Primary.SystemTime)
	assert.Nil(t, b.Alternate)
	assert.Equal(t, models.BookingStatusScheduled, b.Status)
	assert.Equal(t, "candidate", b.ScheduledBy)
	assert.Equal(t, candidateIdentity.Phone, b.CandidatePhone)
	assert.Equal(t, candidateIdentity.Niche, b.Niche)
	assert.Equal(t, candidateIdentity.ResumeURL, b.ResumeURL)
	assert.Equal(t, testNow, b.CreatedAt)

	// Booking and reservation persisted, session discarded, notification out.
	assert.Equal(t, 1, ledger.bookingCount())
	blocked, err := ledger.GetBlockedSlots(ctx, "emp-1", "2024-06-10")
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "10:00:00", blocked[0].SystemTime)
	assert.False(t, sessions.has(sessionID))
	assert.Equal(t, []string{b.ID}, notifier.sent)
}

func TestSubmitOperatorWithAlternate(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})

	st, err := engine.StartSession(ctx, models.ModeOperator, "emp-1", "UTC")
	require.NoError(t, err)
	_, _, err = engine.PickDate(ctx, st.SessionID, "2024-06-10")
	require.NoError(t, err)
	_, err = engine.PickTime(ctx, st.SessionID, "10:00:00")
	require.NoError(t, err)
	_, err = engine.DecideAlternate(ctx, st.SessionID, true)
	require.NoError(t, err)
	_, _, err = engine.PickDate(ctx, st.SessionID, "2024-06-11")
	require.NoError(t, err)
	_, err = engine.PickTime(ctx, st.SessionID, "14:00:00")
	require.NoError(t, err)

	result, err := engine.Submit(ctx, st.SessionID, operatorIdentity)
	require.NoError(t, err)

	b := result.Booking
	assert.Equal(t, "2024-06-10", b.Primary.Date)
	require.NotNil(t, b.Alternate)
	assert.Equal(t, "2024-06-11", b.Alternate.Date)
	assert.Equal(t, "14:00:00", b.Alternate.SystemTime)
	assert.Equal(t, "operator", b.ScheduledBy)
	assert.Empty(t, b.CandidatePhone)

	// Both slots reserved in the ledger.
	primary, err := ledger.GetBlockedSlots(ctx, "emp-1", "2024-06-10")
	require.NoError(t, err)
	alternate, err := ledger.GetBlockedSlots(ctx, "emp-1", "2024-06-11")
	require.NoError(t, err)
	assert.Len(t, primary, 1)
	assert.Len(t, alternate, 1)
}

func TestSubmitAlternateEqualToPrimary(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})

	st, err := engine.StartSession(ctx, models.ModeOperator, "emp-1", "UTC")
	require.NoError(t, err)
	_, _, err = engine.PickDate(ctx, st.SessionID, "2024-06-10")
	require.NoError(t, err)
	_, err = engine.PickTime(ctx, st.SessionID, "10:00:00")
	require.NoError(t, err)
	_, err = engine.DecideAlternate(ctx, st.SessionID, true)
	require.NoError(t, err)
	_, _, err = engine.PickDate(ctx, st.SessionID, "2024-06-10")
	require.NoError(t, err)
	_, err = engine.PickTime(ctx, st.SessionID, "10:00:00")
	require.NoError(t, err)

	result, err := engine.Submit(ctx, st.SessionID, operatorIdentity)
	require.NoError(t, err)
	require.NotNil(t, result.Booking.Alternate)

	// One reservation, not a self-conflict.
	blocked, err := ledger.GetBlockedSlots(ctx, "emp-1", "2024-06-10")
	require.NoError(t, err)
	assert.Len(t, blocked, 1)
}

func TestSubmitRejectsEarlierPhases(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(newFakeLedger(), newMemorySessionStore(), &fakeNotifier{})

	st, err := engine.StartSession(ctx, models.ModeSelfService, "emp-1", "UTC")
	require.NoError(t, err)

	_, err = engine.Submit(ctx, st.SessionID, candidateIdentity)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidAction, ErrCode(err))
}

func TestSubmitIdentityValidation(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})
	sessionID := selfServiceSession(t, engine)

	missingPhone := candidateIdentity
	missingPhone.Phone = ""
	_, err := engine.Submit(ctx, sessionID, missingPhone)
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrCode(err))
	assert.Contains(t, err.Error(), "phone is required")

	badResume := candidateIdentity
	badResume.ResumeURL = "https://example.com/resume.pdf"
	_, err = engine.Submit(ctx, sessionID, badResume)
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrCode(err))

	// Identity variant must match the session mode.
	_, err = engine.Submit(ctx, sessionID, operatorIdentity)
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrCode(err))

	// Nothing was written; the session is still submittable.
	assert.Equal(t, 0, ledger.bookingCount())
	st, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseReadyToSubmit, st.Phase)

	result, err := engine.Submit(ctx, sessionID, candidateIdentity)
	require.NoError(t, err)
	assert.NotNil(t, result.Booking)
}

func TestSubmitConflictOnRecheck(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})
	sessionID := selfServiceSession(t, engine)

	// Someone else takes the slot between selection and submission.
	ledger.block("emp-1", "2024-06-10", "10:00:00")

	_, err := engine.Submit(ctx, sessionID, candidateIdentity)
	require.Error(t, err)
	assert.Equal(t, CodeSlotConflict, ErrCode(err))
	assert.Equal(t, RolePrimary, ConflictRole(err))
	assert.Equal(t, 0, ledger.bookingCount())

	// The session survives so the user can rewind and repick.
	st, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseReadyToSubmit, st.Phase)
	require.NoError(t, applyEditPrimary(st))
}

func TestSubmitConflictNamesAlternate(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})

	st := operatorReadyState(t)
	require.NoError(t, sessions.Save(ctx, st))

	ledger.block("emp-1", "2024-06-11", "14:00:00")

	_, err := engine.Submit(ctx, st.SessionID, operatorIdentity)
	require.Error(t, err)
	assert.Equal(t, CodeSlotConflict, ErrCode(err))
	assert.Equal(t, RoleAlternate, ConflictRole(err))
}

func TestSubmitConcurrentSameSlot(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})

	first := selfServiceSession(t, engine)
	second := selfServiceSession(t, engine)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{first, second} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = engine.Submit(ctx, id, candidateIdentity)
		}(i, id)
	}
	wg.Wait()

	// Exactly one submission wins; the loser gets a conflict either from the
	// re-check or from the ledger's uniqueness guard.
	var conflicts, successes int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case ErrCode(err) == CodeSlotConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, ledger.bookingCount())
}

func TestSubmitStorageFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	engine := newTestEngine(ledger, sessions, &fakeNotifier{})
	sessionID := selfServiceSession(t, engine)

	ledger.failPersist = errors.New("primary stepped down")
	_, err := engine.Submit(ctx, sessionID, candidateIdentity)
	require.Error(t, err)
	assert.Equal(t, CodeStorage, ErrCode(err))

	st, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseFailed, st.Phase)

	// Storage recovers; the same session submits cleanly.
	ledger.failPersist = nil
	result, err := engine.Submit(ctx, sessionID, candidateIdentity)
	require.NoError(t, err)
	assert.NotNil(t, result.Booking)
	assert.False(t, sessions.has(sessionID))
}

func TestSubmitNotificationFailureIsDegradedSuccess(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	sessions := newMemorySessionStore()
	notifier := &fakeNotifier{err: errors.New("webhook 503")}
	engine := newTestEngine(ledger, sessions, notifier)
	sessionID := selfServiceSession(t, engine)

	result, err := engine.Submit(ctx, sessionID, candidateIdentity)
	require.NoError(t, err)
	assert.False(t, result.NotificationSent)
	assert.Equal(t, 1, ledger.bookingCount())
	assert.False(t, sessions.has(sessionID))
}

func TestValidateIdentityOperator(t *testing.T) {
	assert.NoError(t, validateIdentity(operatorIdentity))

	bad := operatorIdentity
	bad.Email = "not-an-email"
	err := validateIdentity(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is malformed")

	empty := models.OperatorIdentity{}
	err = validateIdentity(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email is required")
}

func TestValidateIdentityPhoneFormats(t *testing.T) {
	good := []string{"+1 415-555-0142", "0712345678", "212 555-0199"}
	for _, phone := range good {
		id := candidateIdentity
		id.Phone = phone
		assert.NoError(t, validateIdentity(id), "phone %q", phone)
	}

	bad := []string{"123", "phone-me", "+++123456"}
	for _, phone := range bad {
		id := candidateIdentity
		id.Phone = phone
		assert.Error(t, validateIdentity(id), "phone %q", phone)
	}
}
