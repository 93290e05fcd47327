package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
)

type OrganizationHandler struct {
	batch services.BatchService
}

func NewOrganizationHandler(batch services.BatchService) *OrganizationHandler {
	return &OrganizationHandler{batch: batch}
}

// POST /api/organizations/:id/recompute?date=
func (h *OrganizationHandler) Recompute(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_organization_id", err)
		return
	}
	date, ok := parseDate(c)
	if !ok {
		return
	}

	result, err := h.batch.RecomputeOrganization(c.Request.Context(), organizationID, date)
	if err != nil {
		respondServiceError(c, "recompute_failed", err)
		return
	}
	response.RespondOK(c, result)
}
