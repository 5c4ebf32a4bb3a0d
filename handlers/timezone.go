package handlers

import (
	"net/http"
	"time"

	"hireflow/services/timezone"

	"github.com/gin-gonic/gin"
)

// TimeZoneHandler serves the world-clock surface of the scheduler UI.
type TimeZoneHandler struct {
	Catalog *timezone.Catalog
}

func NewTimeZoneHandler(catalog *timezone.Catalog) *TimeZoneHandler {
	return &TimeZoneHandler{Catalog: catalog}
}

// Regions returns the supported zones grouped by region.
func (h *TimeZoneHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.Catalog.Regions()})
}

// Now returns the current instant in the requested zone. The UI polls this
// at whatever cadence it wants; the engine itself holds no timers.
func (h *TimeZoneHandler) Now(c *gin.Context) {
	zone := c.Query("zone")
	ref, ok := h.Catalog.Resolve(zone)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported time zone", "zone": zone})
		return
	}

	now, err := h.Catalog.Now(ref.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"zone":    ref,
		"instant": now.Format(time.RFC3339),
		"clock":   now.Format("3:04 PM"),
	})
}
