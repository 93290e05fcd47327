package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type LifeEventHandler struct {
	svc services.EmployeeDataService
}

func NewLifeEventHandler(svc services.EmployeeDataService) *LifeEventHandler {
	return &LifeEventHandler{svc: svc}
}

// GET /api/employees/:id/life-events
func (h *LifeEventHandler) ListLifeEvents(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	events, err := h.svc.ListLifeEvents(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, "list_life_events_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"life_events": events})
}

// POST /api/employees/:id/life-events
func (h *LifeEventHandler) CreateLifeEvent(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	var event types.LifeEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_life_event", err)
		return
	}
	event.EmployeeID = employeeID

	if err := h.svc.CreateLifeEvent(c.Request.Context(), &event); err != nil {
		respondServiceError(c, "create_life_event_failed", err)
		return
	}
	response.RespondCreated(c, event)
}

// POST /api/employees/:id/life-events/:eventId/end
func (h *LifeEventHandler) EndLifeEvent(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_life_event_id", err)
		return
	}
	var body struct {
		EndsAt *time.Time `json:"ends_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_life_event", err)
		return
	}
	endsAt := time.Now().UTC().Truncate(24 * time.Hour)
	if body.EndsAt != nil {
		endsAt = *body.EndsAt
	}

	if err := h.svc.EndLifeEvent(c.Request.Context(), employeeID, eventID, endsAt); err != nil {
		respondServiceError(c, "end_life_event_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ended": true})
}
