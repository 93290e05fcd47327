package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type CheckinHandler struct {
	svc services.EmployeeDataService
}

func NewCheckinHandler(svc services.EmployeeDataService) *CheckinHandler {
	return &CheckinHandler{svc: svc}
}

type checkinRequest struct {
	OverallFeeling int     `json:"overall_feeling" binding:"required"`
	EnergyLevel    int     `json:"energy_level" binding:"required"`
	StressLevel    int     `json:"stress_level" binding:"required"`
	Motivation     int     `json:"motivation" binding:"required"`
	Note           *string `json:"note"`
}

// POST /api/employees/:id/checkins
func (h *CheckinHandler) CreateCheckin(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_checkin", err)
		return
	}

	checkin := &types.Checkin{
		EmployeeID:     employeeID,
		OverallFeeling: req.OverallFeeling,
		EnergyLevel:    req.EnergyLevel,
		StressLevel:    req.StressLevel,
		Motivation:     req.Motivation,
		Note:           req.Note,
	}
	if err := h.svc.RecordCheckin(c.Request.Context(), checkin); err != nil {
		respondServiceError(c, "create_checkin_failed", err)
		return
	}
	response.RespondCreated(c, checkin)
}
