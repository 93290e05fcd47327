package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
)

type ScoreHandler struct {
	svc services.ScoreService
}

func NewScoreHandler(svc services.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

// parseDate reads the ?date= query, defaulting to today (UTC).
func parseDate(c *gin.Context) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), true
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return time.Time{}, false
	}
	return day, true
}

func parseEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_employee_id", err)
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/employees/:id/score?date=
func (h *ScoreHandler) GetScore(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	date, ok := parseDate(c)
	if !ok {
		return
	}

	result, err := h.svc.ComputeScore(c.Request.Context(), employeeID, date)
	if err != nil {
		respondServiceError(c, "compute_score_failed", err)
		return
	}
	response.RespondOK(c, result)
}

// GET /api/employees/:id/explanation?date=&role=&raw=
func (h *ScoreHandler) GetExplanation(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	date, ok := parseDate(c)
	if !ok {
		return
	}
	role := c.DefaultQuery("role", services.RoleEmployee)
	includeRaw := c.Query("raw") == "true"

	_, explanation, err := h.svc.Explain(c.Request.Context(), employeeID, date, role, includeRaw)
	if err != nil {
		respondServiceError(c, "explain_failed", err)
		return
	}
	response.RespondOK(c, explanation)
}
