package models

// TimeZoneRef identifies a supported display time zone.
type TimeZoneRef struct {
	ID     string `json:"id"`     // IANA identifier (e.g., "America/Chicago")
	Label  string `json:"label"`  // Human label (e.g., "Chicago (Central)")
	Region string `json:"region"` // Catalog grouping (e.g., "North America")
}

// TimeZoneRegion is one catalog group in display order.
type TimeZoneRegion struct {
	Name  string        `json:"name"`
	Zones []TimeZoneRef `json:"zones"`
}
