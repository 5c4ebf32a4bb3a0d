package handlers

import (
	"net/http"

	bookingRepo "hireflow/database/repository/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the agency portal's booking ledger views.
type AdminHandler struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

func NewAdminHandler(repo bookingRepo.BookingRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Repo: repo, Logger: logger}
}

// ListBookings returns the bookings for an employee on a date.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	employeeID := c.Query("employeeId")
	date := c.Query("date")
	if employeeID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId and date are required"})
		return
	}

	bookings, err := h.Repo.ListByDate(c.Request.Context(), employeeID, date)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("employeeID", employeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking returns one booking by ID.
func (h *AdminHandler) GetBooking(c *gin.Context) {
	booking, err := h.Repo.GetByID(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking cancels a booking and releases its slots in the ledger.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if err := h.Repo.CancelBooking(c.Request.Context(), bookingID); err != nil {
		h.Logger.Error("failed to cancel booking", zap.String("bookingID", bookingID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found or already cancelled"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
