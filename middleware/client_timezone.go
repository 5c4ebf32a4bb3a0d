package middleware

import (
	"hireflow/services/timezone"

	"github.com/gin-gonic/gin"
)

// ClientTimeZoneKey is the context key carrying the resolved display zone.
const ClientTimeZoneKey = "clientTimeZone"

// ClientTimeZoneMiddleware resolves the caller's display zone from the
// X-Time-Zone header (browser-reported). Resolution is best-effort; an
// unknown or missing zone falls back to the configured default so downstream
// handlers always find a usable zone.
func ClientTimeZoneMiddleware(catalog *timezone.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := catalog.ResolveUserZone(c.GetHeader("X-Time-Zone"))
		c.Set(ClientTimeZoneKey, ref.ID)
		c.Next()
	}
}

// ClientTimeZone reads the resolved zone off the request context.
func ClientTimeZone(c *gin.Context) string {
	if zone, ok := c.Get(ClientTimeZoneKey); ok {
		if s, ok := zone.(string); ok {
			return s
		}
	}
	return ""
}
