package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type ThresholdHandler struct {
	svc services.EmployeeDataService
}

func NewThresholdHandler(svc services.EmployeeDataService) *ThresholdHandler {
	return &ThresholdHandler{svc: svc}
}

// GET /api/employees/:id/thresholds
func (h *ThresholdHandler) ListThresholds(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	configs, err := h.svc.ListThresholdOverrides(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, "list_thresholds_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"thresholds": configs})
}

type thresholdRequest struct {
	BurnoutRedThreshold          float64    `json:"burnout_red_threshold" binding:"required"`
	ReadinessGreenThreshold      float64    `json:"readiness_green_threshold" binding:"required"`
	InteractionHighThreshold     float64    `json:"interaction_high_threshold"`
	InteractionCriticalThreshold float64    `json:"interaction_critical_threshold"`
	ThresholdType                string     `json:"threshold_type"`
	EnableInteractionEffects     *bool      `json:"enable_interaction_effects"`
	EnableWeekendAdjustment      *bool      `json:"enable_weekend_adjustment"`
	StartsAt                     *time.Time `json:"starts_at"`
	EndsAt                       *time.Time `json:"ends_at"`
	Reason                       *string    `json:"reason"`
}

// POST /api/employees/:id/thresholds
func (h *ThresholdHandler) CreateThreshold(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	var req thresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_threshold", err)
		return
	}

	config := &types.ThresholdConfig{
		EmployeeID:                   &employeeID,
		BurnoutRedThreshold:          req.BurnoutRedThreshold,
		ReadinessGreenThreshold:      req.ReadinessGreenThreshold,
		InteractionHighThreshold:     req.InteractionHighThreshold,
		InteractionCriticalThreshold: req.InteractionCriticalThreshold,
		ThresholdType:                req.ThresholdType,
		StartsAt:                     req.StartsAt,
		EndsAt:                       req.EndsAt,
		Reason:                       req.Reason,
	}
	if config.ThresholdType == "" {
		config.ThresholdType = types.ThresholdTypeAbsolute
	}
	if config.InteractionHighThreshold == 0 {
		config.InteractionHighThreshold = 8
	}
	if config.InteractionCriticalThreshold == 0 {
		config.InteractionCriticalThreshold = 12
	}
	config.EnableInteractionEffects = req.EnableInteractionEffects == nil || *req.EnableInteractionEffects
	config.EnableWeekendAdjustment = req.EnableWeekendAdjustment == nil || *req.EnableWeekendAdjustment

	if err := h.svc.CreateThresholdOverride(c.Request.Context(), config); err != nil {
		respondServiceError(c, "create_threshold_failed", err)
		return
	}
	response.RespondCreated(c, config)
}
