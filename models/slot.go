package models

// WorkingHours is the bookable window for a given scheduling context,
// expressed as inclusive whole hours on the reference-zone clock.
type WorkingHours struct {
	Start int `json:"start"` // e.g., 9 for 09:00
	End   int `json:"end"`   // e.g., 17 for 17:00
}

// CandidateSlot is one bookable hour offered for a calendar date. SystemTime
// is always the reference-zone clock value used for bookkeeping; DisplayTime
// is the same instant rendered in the session's target zone. Slot lists are
// rebuilt for every (date, zone) pair and never mutated in place.
type CandidateSlot struct {
	Date        string `json:"date"`        // "2006-01-02"
	SystemTime  string `json:"systemTime"`  // "15:00:00", reference zone
	DisplayTime string `json:"displayTime"` // "3:00 PM", target zone
	Available   bool   `json:"available"`
}

// SlotSelection denotes a slot chosen as primary or alternate.
type SlotSelection struct {
	Date       string `bson:"date" json:"date"`
	SystemTime string `bson:"system_time" json:"systemTime"`
	TimeZone   string `bson:"time_zone" json:"timeZone"` // zone the slot was displayed in
}
