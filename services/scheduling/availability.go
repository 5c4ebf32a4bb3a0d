package scheduling

import (
	"context"

	"hireflow/models"
	"hireflow/utils"

	"go.uber.org/zap"
)

// Annotate cross-references candidate slots against the blocked set: a slot
// is unavailable iff its (date, systemTime) appears among the blocked
// intervals. Pure function; returns a fresh list and never mutates the input.
func Annotate(candidates []models.CandidateSlot, blocked []models.BlockedInterval) []models.CandidateSlot {
	taken := make(map[string]bool, len(blocked))
	for _, b := range blocked {
		taken[b.Date+"|"+b.SystemTime] = true
	}

	out := make([]models.CandidateSlot, len(candidates))
	for i, c := range candidates {
		c.Available = !taken[c.Date+"|"+c.SystemTime]
		out[i] = c
	}
	return out
}

// SlotsForDate generates the candidates for a date and annotates them with
// the ledger's blocked intervals. The blocked set is fetched fresh on every
// call — availability may change between views of the same date.
//
// A fetch failure defaults every slot to available rather than blocking the
// picker. That is deliberate: display availability is advisory, and the
// submission-time re-check is the correctness backstop.
func (e *DefaultSchedulingEngine) SlotsForDate(ctx context.Context, employeeID, date, zone string) []models.CandidateSlot {
	candidates := Generate(date, e.Hours, zone)

	blocked, err := e.Repo.GetBlockedSlots(ctx, employeeID, date)
	if err != nil {
		utils.GetLogger().Warn("blocked-slot fetch failed, showing all slots as available",
			zap.String("employeeID", employeeID),
			zap.String("date", date),
			zap.Error(err))
		return candidates
	}
	return Annotate(candidates, blocked)
}
