package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellpulse/wellpulse-backend/internal/apierr"
	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/modules/scoring"
)

// respondServiceError maps the error taxonomy onto HTTP: consent violations
// are 403, broken threshold configuration is 500 config_error, apierr carries
// its own status, anything else falls back to the supplied code.
func respondServiceError(c *gin.Context, fallbackCode string, err error) {
	var cve *scoring.ConsentViolationError
	if errors.As(err, &cve) {
		response.RespondError(c, http.StatusForbidden, "consent_violation", err)
		return
	}
	var cfg *scoring.ConfigurationError
	if errors.As(err, &cfg) {
		response.RespondError(c, http.StatusInternalServerError, "config_error", err)
		return
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, fallbackCode, err)
}
