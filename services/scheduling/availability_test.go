package scheduling

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"hireflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateMarksBlockedSlot(t *testing.T) {
	candidates := Generate("2024-06-10", models.WorkingHours{Start: 9, End: 17}, "UTC")
	blocked := []models.BlockedInterval{
		{EmployeeID: "emp-1", Date: "2024-06-10", SystemTime: "13:00:00"},
	}

	annotated := Annotate(candidates, blocked)
	require.Len(t, annotated, 9)
	for _, s := range annotated {
		if s.SystemTime == "13:00:00" {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot %s should stay available", s.SystemTime)
		}
	}
}

func TestAnnotateIgnoresOtherDates(t *testing.T) {
	candidates := Generate("2024-06-10", models.WorkingHours{Start: 9, End: 10}, "UTC")
	blocked := []models.BlockedInterval{
		{Date: "2024-06-11", SystemTime: "09:00:00"},
	}

	for _, s := range Annotate(candidates, blocked) {
		assert.True(t, s.Available)
	}
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	candidates := Generate("2024-06-10", models.WorkingHours{Start: 9, End: 10}, "UTC")
	blocked := []models.BlockedInterval{
		{Date: "2024-06-10", SystemTime: "09:00:00"},
	}

	_ = Annotate(candidates, blocked)
	for _, s := range candidates {
		assert.True(t, s.Available)
	}
}

// Availability is exactly set membership: a slot is unavailable iff its
// (date, systemTime) pair is in the blocked set.
func TestAnnotateMatchesBlockedSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		date := fmt.Sprintf("2024-06-%02d", 10+rng.Intn(4))
		start := rng.Intn(12)
		end := start + rng.Intn(12)
		candidates := Generate(date, models.WorkingHours{Start: start, End: end}, "UTC")

		taken := map[string]bool{}
		var blocked []models.BlockedInterval
		for h := start; h <= end; h++ {
			if rng.Intn(2) == 0 {
				continue
			}
			st := fmt.Sprintf("%02d:00:00", h)
			taken[st] = true
			blocked = append(blocked, models.BlockedInterval{Date: date, SystemTime: st})
		}
		// Noise on a different date must not leak in.
		blocked = append(blocked, models.BlockedInterval{Date: "2024-07-01", SystemTime: "09:00:00"})

		for _, s := range Annotate(candidates, blocked) {
			assert.Equal(t, !taken[s.SystemTime], s.Available,
				"trial %d slot %s", trial, s.SystemTime)
		}
	}
}

func TestSlotsForDateAnnotatesFromLedger(t *testing.T) {
	ledger := newFakeLedger()
	ledger.block("emp-1", "2024-06-10", "13:00:00")
	engine := newTestEngine(ledger, newMemorySessionStore(), &fakeNotifier{})

	slots := engine.SlotsForDate(context.Background(), "emp-1", "2024-06-10", "UTC")
	require.Len(t, slots, 9)
	for _, s := range slots {
		assert.Equal(t, s.SystemTime != "13:00:00", s.Available)
	}
}

func TestSlotsForDateFailsOpenOnFetchError(t *testing.T) {
	ledger := newFakeLedger()
	ledger.block("emp-1", "2024-06-10", "13:00:00")
	ledger.failFetch = errors.New("ledger unreachable")
	engine := newTestEngine(ledger, newMemorySessionStore(), &fakeNotifier{})

	slots := engine.SlotsForDate(context.Background(), "emp-1", "2024-06-10", "UTC")
	require.Len(t, slots, 9)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

// Two fetches of the same date with no writes in between must agree.
func TestBlockedSlotFetchIsRepeatable(t *testing.T) {
	ledger := newFakeLedger()
	ledger.block("emp-1", "2024-06-10", "10:00:00")
	ledger.block("emp-1", "2024-06-10", "15:00:00")

	first, err := ledger.GetBlockedSlots(context.Background(), "emp-1", "2024-06-10")
	require.NoError(t, err)
	second, err := ledger.GetBlockedSlots(context.Background(), "emp-1", "2024-06-10")
	require.NoError(t, err)
	assert.ElementsMatch(t, first, second)
	assert.Len(t, first, 2)
}
