package timezone

import (
	"fmt"
	"time"

	"hireflow/models"
)

// Catalog is the static registry of display zones offered by the scheduler,
// grouped by region. Loaded once at startup; never mutated afterwards.
type Catalog struct {
	byID    map[string]models.TimeZoneRef
	regions []string
	grouped map[string][]models.TimeZoneRef
}

var regionOrder = []string{
	"North America",
	"Latin America",
	"Europe",
	"Middle East & Africa",
	"Asia",
	"Oceania",
}

var catalogZones = []models.TimeZoneRef{
	{ID: "America/New_York", Label: "New York (Eastern)", Region: "North America"},
	{ID: "America/Chicago", Label: "Chicago (Central)", Region: "North America"},
	{ID: "America/Denver", Label: "Denver (Mountain)", Region: "North America"},
	{ID: "America/Los_Angeles", Label: "Los Angeles (Pacific)", Region: "North America"},
	{ID: "America/Anchorage", Label: "Anchorage (Alaska)", Region: "North America"},
	{ID: "America/Toronto", Label: "Toronto", Region: "North America"},
	{ID: "America/Mexico_City", Label: "Mexico City", Region: "Latin America"},
	{ID: "America/Bogota", Label: "Bogotá", Region: "Latin America"},
	{ID: "America/Sao_Paulo", Label: "São Paulo", Region: "Latin America"},
	{ID: "America/Argentina/Buenos_Aires", Label: "Buenos Aires", Region: "Latin America"},
	{ID: "Europe/London", Label: "London", Region: "Europe"},
	{ID: "Europe/Dublin", Label: "Dublin", Region: "Europe"},
	{ID: "Europe/Paris", Label: "Paris", Region: "Europe"},
	{ID: "Europe/Berlin", Label: "Berlin", Region: "Europe"},
	{ID: "Europe/Madrid", Label: "Madrid", Region: "Europe"},
	{ID: "Europe/Warsaw", Label: "Warsaw", Region: "Europe"},
	{ID: "Europe/Kyiv", Label: "Kyiv", Region: "Europe"},
	{ID: "Africa/Cairo", Label: "Cairo", Region: "Middle East & Africa"},
	{ID: "Africa/Lagos", Label: "Lagos", Region: "Middle East & Africa"},
	{ID: "Africa/Nairobi", Label: "Nairobi", Region: "Middle East & Africa"},
	{ID: "Asia/Dubai", Label: "Dubai", Region: "Middle East & Africa"},
	{ID: "Asia/Jerusalem", Label: "Jerusalem", Region: "Middle East & Africa"},
	{ID: "Asia/Karachi", Label: "Karachi", Region: "Asia"},
	{ID: "Asia/Kolkata", Label: "Mumbai / Delhi", Region: "Asia"},
	{ID: "Asia/Dhaka", Label: "Dhaka", Region: "Asia"},
	{ID: "Asia/Bangkok", Label: "Bangkok", Region: "Asia"},
	{ID: "Asia/Singapore", Label: "Singapore", Region: "Asia"},
	{ID: "Asia/Manila", Label: "Manila", Region: "Asia"},
	{ID: "Asia/Shanghai", Label: "Beijing / Shanghai", Region: "Asia"},
	{ID: "Asia/Tokyo", Label: "Tokyo", Region: "Asia"},
	{ID: "Australia/Sydney", Label: "Sydney", Region: "Oceania"},
	{ID: "Pacific/Auckland", Label: "Auckland", Region: "Oceania"},
}

// DefaultCatalog builds the catalog from the built-in zone list.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		byID:    make(map[string]models.TimeZoneRef, len(catalogZones)),
		regions: regionOrder,
		grouped: make(map[string][]models.TimeZoneRef, len(regionOrder)),
	}
	for _, z := range catalogZones {
		c.byID[z.ID] = z
		c.grouped[z.Region] = append(c.grouped[z.Region], z)
	}
	return c
}

// Resolve looks up a zone by its IANA identifier.
func (c *Catalog) Resolve(id string) (models.TimeZoneRef, bool) {
	ref, ok := c.byID[id]
	return ref, ok
}

// Regions returns the catalog grouped by region, in display order.
func (c *Catalog) Regions() []models.TimeZoneRegion {
	out := make([]models.TimeZoneRegion, 0, len(c.regions))
	for _, r := range c.regions {
		out = append(out, models.TimeZoneRegion{Name: r, Zones: c.grouped[r]})
	}
	return out
}

// Now returns the current instant in the given zone. Display-only; callers
// that need a refresh cadence poll this themselves.
func (c *Catalog) Now(id string) (time.Time, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown time zone %q: %w", id, err)
	}
	return time.Now().In(loc), nil
}
