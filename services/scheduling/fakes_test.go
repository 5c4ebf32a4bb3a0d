package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	bookingRepo "hireflow/database/repository/booking"
	"hireflow/models"
	"hireflow/services/timezone"
)

// fakeLedger is an in-memory BookingRepository with the same uniqueness
// guard as the Mongo implementation: inserting a reservation that already
// exists fails with *bookingRepo.SlotTakenError.
type fakeLedger struct {
	mu       sync.Mutex
	blocked  map[string]bool // employeeID|date|systemTime
	bookings map[string]*models.InterviewBooking

	failFetch   error
	failPersist error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		blocked:  map[string]bool{},
		bookings: map[string]*models.InterviewBooking{},
	}
}

func ledgerKey(employeeID, date, systemTime string) string {
	return employeeID + "|" + date + "|" + systemTime
}

func (f *fakeLedger) block(employeeID, date, systemTime string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocked[ledgerKey(employeeID, date, systemTime)] = true
}

func (f *fakeLedger) GetBlockedSlots(_ context.Context, employeeID, date string) ([]models.BlockedInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFetch != nil {
		return nil, f.failFetch
	}

	prefix := employeeID + "|" + date + "|"
	var out []models.BlockedInterval
	for key := range f.blocked {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, models.BlockedInterval{
				EmployeeID: employeeID,
				Date:       date,
				SystemTime: key[len(prefix):],
			})
		}
	}
	return out, nil
}

func (f *fakeLedger) PersistBooking(_ context.Context, booking *models.InterviewBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPersist != nil {
		return f.failPersist
	}

	reservations := []models.SlotSelection{booking.Primary}
	if alt := booking.Alternate; alt != nil &&
		!(alt.Date == booking.Primary.Date && alt.SystemTime == booking.Primary.SystemTime) {
		reservations = append(reservations, *alt)
	}
	for _, sel := range reservations {
		if f.blocked[ledgerKey(booking.EmployeeID, sel.Date, sel.SystemTime)] {
			return &bookingRepo.SlotTakenError{
				EmployeeID: booking.EmployeeID,
				Date:       sel.Date,
				SystemTime: sel.SystemTime,
			}
		}
	}
	for _, sel := range reservations {
		f.blocked[ledgerKey(booking.EmployeeID, sel.Date, sel.SystemTime)] = true
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeLedger) GetByID(_ context.Context, bookingID string) (*models.InterviewBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}

func (f *fakeLedger) ListByDate(_ context.Context, employeeID, date string) ([]models.InterviewBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.InterviewBooking
	for _, b := range f.bookings {
		if b.EmployeeID == employeeID && b.Primary.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeLedger) CancelBooking(_ context.Context, bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = models.BookingStatusCancelled
	delete(f.blocked, ledgerKey(b.EmployeeID, b.Primary.Date, b.Primary.SystemTime))
	if b.Alternate != nil {
		delete(f.blocked, ledgerKey(b.EmployeeID, b.Alternate.Date, b.Alternate.SystemTime))
	}
	return nil
}

func (f *fakeLedger) EnsureIndexes() error { return nil }

func (f *fakeLedger) bookingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// memorySessionStore round-trips states through JSON the way the Redis
// store does, so anything that would not survive serialization fails here too.
type memorySessionStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{m: map[string][]byte{}}
}

func (s *memorySessionStore) Save(_ context.Context, st *models.NegotiationState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[st.SessionID] = data
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (*models.NegotiationState, error) {
	s.mu.Lock()
	data, ok := s.m[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, &SchedulingError{Code: CodeSessionNotFound, Message: "session not found"}
	}
	var st models.NegotiationState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sessionID)
	return nil
}

func (s *memorySessionStore) has(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[sessionID]
	return ok
}

type fakeNotifier struct {
	mu   sync.Mutex
	err  error
	sent []string
}

func (n *fakeNotifier) SendBookingNotification(_ context.Context, booking *models.InterviewBooking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, booking.ID)
	return nil
}

// testNow is a Monday morning; the Mondays and Tuesdays that follow it are
// the dates the tests book.
var testNow = time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC)

func newTestEngine(ledger *fakeLedger, sessions *memorySessionStore, notifier *fakeNotifier) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Repo:             ledger,
		Sessions:         sessions,
		Catalog:          timezone.DefaultCatalog(),
		Notifier:         notifier,
		Hours:            models.WorkingHours{Start: 9, End: 17},
		UnavailableDates: map[string]bool{},
		Now:              func() time.Time { return testNow },
	}
}
