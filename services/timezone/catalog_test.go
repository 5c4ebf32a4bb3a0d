package timezone

import (
	"os"
	"testing"

	"hireflow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig.FallbackZone = "America/New_York"
	os.Exit(m.Run())
}

func TestResolveKnownZone(t *testing.T) {
	c := DefaultCatalog()

	ref, ok := c.Resolve("Asia/Tokyo")
	require.True(t, ok)
	assert.Equal(t, "Tokyo", ref.Label)
	assert.Equal(t, "Asia", ref.Region)

	_, ok = c.Resolve("Mars/Olympus_Mons")
	assert.False(t, ok)
	_, ok = c.Resolve("")
	assert.False(t, ok)
}

func TestRegionsGroupedInDisplayOrder(t *testing.T) {
	regions := DefaultCatalog().Regions()
	require.Len(t, regions, 6)
	assert.Equal(t, "North America", regions[0].Name)
	assert.Equal(t, "Oceania", regions[5].Name)

	total := 0
	for _, r := range regions {
		assert.NotEmpty(t, r.Zones, "region %s has no zones", r.Name)
		for _, z := range r.Zones {
			assert.Equal(t, r.Name, z.Region)
		}
		total += len(r.Zones)
	}
	assert.Equal(t, len(catalogZones), total)
}

func TestNow(t *testing.T) {
	c := DefaultCatalog()

	now, err := c.Now("Europe/London")
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", now.Location().String())

	_, err = c.Now("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestResolveUserZone(t *testing.T) {
	c := DefaultCatalog()

	// Known zone resolves to itself.
	ref := c.ResolveUserZone("Europe/Paris")
	assert.Equal(t, "Europe/Paris", ref.ID)

	// Unknown or empty falls back to the configured zone.
	assert.Equal(t, "America/New_York", c.ResolveUserZone("Mars/Olympus_Mons").ID)
	assert.Equal(t, "America/New_York", c.ResolveUserZone("").ID)
}

func TestResolveUserZoneFallbackOutsideCatalog(t *testing.T) {
	prev := config.AppConfig.FallbackZone
	config.AppConfig.FallbackZone = "UTC"
	defer func() { config.AppConfig.FallbackZone = prev }()

	ref := DefaultCatalog().ResolveUserZone("Mars/Olympus_Mons")
	assert.Equal(t, "UTC", ref.ID)
}
