package scheduling

import (
	"fmt"
	"time"

	"hireflow/config"
	"hireflow/models"
	"hireflow/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Generate produces the ordered candidate slots for one calendar date: one
// slot per whole hour in [hours.Start, hours.End] inclusive. SystemTime is
// always the reference-zone clock value; DisplayTime is the same instant
// rendered 12-hour in the target zone. Start > End yields an empty list.
//
// Display conversion is fail-open: if the target zone or the date cannot be
// resolved, slots render on the reference clock and stay available so the
// picker is never blank. The authoritative check happens at submission.
func Generate(date string, hours models.WorkingHours, zone string) []models.CandidateSlot {
	if hours.Start > hours.End {
		return nil
	}

	refLoc, err := time.LoadLocation(config.AppConfig.ReferenceZone)
	if err != nil {
		utils.GetLogger().Error("reference zone failed to load, using UTC",
			zap.String("zone", config.AppConfig.ReferenceZone), zap.Error(err))
		refLoc = time.UTC
	}

	day, dayErr := time.ParseInLocation(dateLayout, date, refLoc)
	targetLoc, zoneErr := time.LoadLocation(zone)
	convert := dayErr == nil && zoneErr == nil
	if zoneErr != nil {
		utils.GetLogger().Warn("display zone failed to load, rendering reference clock",
			zap.String("zone", zone), zap.Error(zoneErr))
	}

	slots := make([]models.CandidateSlot, 0, hours.End-hours.Start+1)
	for h := hours.Start; h <= hours.End; h++ {
		var display string
		if convert {
			instant := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, refLoc)
			display = instant.In(targetLoc).Format("3:04 PM")
		} else {
			display = time.Date(1, time.January, 1, h, 0, 0, 0, time.UTC).Format("3:04 PM")
		}
		slots = append(slots, models.CandidateSlot{
			Date:        date,
			SystemTime:  fmt.Sprintf("%02d:00:00", h),
			DisplayTime: display,
			Available:   true,
		})
	}
	return slots
}

// withinWorkingHours validates that systemTime is a whole-hour value inside
// the working window. Fractional-hour slots are a defect, not a valid state.
func withinWorkingHours(systemTime string, hours models.WorkingHours) bool {
	var h, m, s int
	if _, err := fmt.Sscanf(systemTime, "%02d:%02d:%02d", &h, &m, &s); err != nil {
		return false
	}
	if m != 0 || s != 0 {
		return false
	}
	return h >= hours.Start && h <= hours.End
}
