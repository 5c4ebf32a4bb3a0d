package handlers

import (
	"net/http"

	"hireflow/middleware"
	"hireflow/models"
	"hireflow/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the negotiation engine over HTTP.
type SchedulingHandler struct {
	Engine scheduling.SchedulingService
	Logger *zap.Logger
}

func NewSchedulingHandler(engine scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine, Logger: logger}
}

// respondSchedulingError maps the scheduling error taxonomy onto HTTP.
func respondSchedulingError(c *gin.Context, err error) {
	code := scheduling.ErrCode(err)
	status := http.StatusInternalServerError
	switch code {
	case scheduling.CodeSessionNotFound:
		status = http.StatusNotFound
	case scheduling.CodeInvalidDate, scheduling.CodeSlotUnavailable,
		scheduling.CodeInvalidAction, scheduling.CodeValidation:
		status = http.StatusBadRequest
	case scheduling.CodeSlotConflict:
		status = http.StatusConflict
	}

	body := gin.H{"error": err.Error()}
	if code != "" {
		body["code"] = code
	}
	if role := scheduling.ConflictRole(err); role != "" {
		body["slot"] = role
	}
	c.JSON(status, body)
}

// StartSession opens a new scheduling session.
func (h *SchedulingHandler) StartSession(c *gin.Context) {
	var input struct {
		Mode       models.SessionMode `json:"mode" binding:"required"`
		EmployeeID string             `json:"employeeId" binding:"required"`
		TimeZone   string             `json:"timeZone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	zone := input.TimeZone
	if zone == "" {
		zone = middleware.ClientTimeZone(c)
	}

	st, err := h.Engine.StartSession(c.Request.Context(), input.Mode, input.EmployeeID, zone)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

// PickDate chooses the date being viewed and returns its candidate slots.
func (h *SchedulingHandler) PickDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	st, slots, err := h.Engine.PickDate(c.Request.Context(), sessionID, input.Date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st, "slots": slots})
}

// PickTime chooses a slot on the date being viewed.
func (h *SchedulingHandler) PickTime(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SystemTime string `json:"systemTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	st, err := h.Engine.PickTime(c.Request.Context(), sessionID, input.SystemTime)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

// DecideAlternate records the operator's answer to "offer an alternate?".
func (h *SchedulingHandler) DecideAlternate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Offer *bool `json:"offer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	st, err := h.Engine.DecideAlternate(c.Request.Context(), sessionID, *input.Offer)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

// EditPrimary rewinds the session to primary date picking.
func (h *SchedulingHandler) EditPrimary(c *gin.Context) {
	st, err := h.Engine.EditPrimary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

// EditAlternate rewinds the session to alternate date picking.
func (h *SchedulingHandler) EditAlternate(c *gin.Context) {
	st, err := h.Engine.EditAlternate(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": st})
}

// Submit finalizes the negotiation into a durable booking. The identity
// payload is read per session mode so each mode's required fields are
// enforced by its own type.
func (h *SchedulingHandler) Submit(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Mode      models.SessionMode `json:"mode" binding:"required"`
		Name      string             `json:"name"`
		Email     string             `json:"email"`
		Phone     string             `json:"phone"`
		Niche     string             `json:"niche"`
		ResumeURL string             `json:"resumeUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var identity models.Identity
	switch input.Mode {
	case models.ModeSelfService:
		identity = models.SelfServiceIdentity{
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			Niche:     input.Niche,
			ResumeURL: input.ResumeURL,
		}
	case models.ModeOperator:
		identity = models.OperatorIdentity{Name: input.Name, Email: input.Email}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown session mode"})
		return
	}

	result, err := h.Engine.Submit(c.Request.Context(), sessionID, identity)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	status := http.StatusOK
	if !result.NotificationSent {
		h.Logger.Warn("booking stored but notification undelivered",
			zap.String("bookingID", result.Booking.ID))
	}
	c.JSON(status, result)
}

// CancelSession discards an in-progress negotiation.
func (h *SchedulingHandler) CancelSession(c *gin.Context) {
	if err := h.Engine.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}
