package timezone

import (
	"hireflow/config"
	"hireflow/models"
	"hireflow/utils"

	"go.uber.org/zap"
)

// ResolveUserZone maps a browser-reported zone identifier to a catalog entry.
// Resolution is best-effort: an empty or unknown identifier falls back to the
// configured fallback zone so a session always has a usable display zone.
func (c *Catalog) ResolveUserZone(reported string) models.TimeZoneRef {
	if reported != "" {
		if ref, ok := c.Resolve(reported); ok {
			return ref
		}
		utils.GetLogger().Debug("unsupported client time zone, using fallback",
			zap.String("reported", reported),
			zap.String("fallback", config.AppConfig.FallbackZone))
	}

	if ref, ok := c.Resolve(config.AppConfig.FallbackZone); ok {
		return ref
	}
	// Fallback zone not in the catalog; still usable for conversion.
	return models.TimeZoneRef{
		ID:    config.AppConfig.FallbackZone,
		Label: config.AppConfig.FallbackZone,
	}
}
