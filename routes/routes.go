package routes

import (
	"net/http"

	"hireflow/handlers"
	"hireflow/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints of the scheduling engine.
func RegisterRoutes(
	r *gin.Engine,
	sh *handlers.SchedulingHandler,
	tzh *handlers.TimeZoneHandler,
	ah *handlers.AdminHandler,
) {
	scheduling := r.Group("/api/scheduling")
	{
		scheduling.POST("/session", sh.StartSession)
		scheduling.POST("/session/:sessionID/date", sh.PickDate)
		scheduling.POST("/session/:sessionID/time", sh.PickTime)
		scheduling.POST("/session/:sessionID/alternate", sh.DecideAlternate)
		scheduling.POST("/session/:sessionID/edit-primary", sh.EditPrimary)
		scheduling.POST("/session/:sessionID/edit-alternate", sh.EditAlternate)
		scheduling.POST("/session/:sessionID/submit", sh.Submit)
		scheduling.DELETE("/session/:sessionID", sh.CancelSession)
	}

	timezones := r.Group("/api/timezones")
	{
		timezones.GET("", tzh.Regions)
		timezones.GET("/now", tzh.Now)
	}

	admin := r.Group("/api/admin")
	{
		admin.GET("/bookings", ah.ListBookings)
		admin.GET("/bookings/:bookingID", ah.GetBooking)
		admin.POST("/bookings/:bookingID/cancel", ah.CancelBooking)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}
