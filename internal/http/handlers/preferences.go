package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type PreferencesHandler struct {
	svc services.EmployeeDataService
}

func NewPreferencesHandler(svc services.EmployeeDataService) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

// GET /api/employees/:id/preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	prefs, err := h.svc.GetPreferences(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, "load_preferences_failed", err)
		return
	}
	if prefs == nil {
		// No stored row: the defaults apply.
		response.RespondOK(c, gin.H{"preferences": nil})
		return
	}
	response.RespondOK(c, gin.H{"preferences": prefs})
}

// PUT /api/employees/:id/preferences
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	var prefs types.PersonalPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_preferences", err)
		return
	}
	prefs.EmployeeID = employeeID

	weightSum := prefs.WeightSleep + prefs.WeightExercise + prefs.WeightWorkload +
		prefs.WeightMeetings + prefs.WeightHeart
	if math.Abs(weightSum-1.0) > 0.001 {
		response.RespondError(c, http.StatusBadRequest, "invalid_preferences",
			fmt.Errorf("factor weights must sum to 1.0, got %.3f", weightSum))
		return
	}

	if err := h.svc.UpdatePreferences(c.Request.Context(), &prefs); err != nil {
		respondServiceError(c, "update_preferences_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"preferences": prefs})
}
