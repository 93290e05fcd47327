package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type ConsentHandler struct {
	svc services.EmployeeDataService
}

func NewConsentHandler(svc services.EmployeeDataService) *ConsentHandler {
	return &ConsentHandler{svc: svc}
}

// GET /api/employees/:id/consent
func (h *ConsentHandler) GetConsent(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	consent, err := h.svc.GetConsent(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, "load_consent_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"consent": consent})
}

type consentRequest struct {
	UseHealthData       *bool `json:"use_health_data" binding:"required"`
	UseWorkData         *bool `json:"use_work_data" binding:"required"`
	UseCheckinData      *bool `json:"use_checkin_data" binding:"required"`
	ShareWithAggregates *bool `json:"share_with_aggregates" binding:"required"`
}

// PUT /api/employees/:id/consent
func (h *ConsentHandler) UpdateConsent(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	var req consentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_consent", err)
		return
	}

	consent := &types.ScoringConsent{
		EmployeeID:          employeeID,
		UseHealthData:       *req.UseHealthData,
		UseWorkData:         *req.UseWorkData,
		UseCheckinData:      *req.UseCheckinData,
		ShareWithAggregates: *req.ShareWithAggregates,
	}
	if err := h.svc.UpdateConsent(c.Request.Context(), consent); err != nil {
		respondServiceError(c, "update_consent_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"consent": consent})
}
