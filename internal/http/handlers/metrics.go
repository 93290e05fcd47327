package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellpulse/wellpulse-backend/internal/http/response"
	"github.com/wellpulse/wellpulse-backend/internal/services"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type MetricsHandler struct {
	svc services.EmployeeDataService
}

func NewMetricsHandler(svc services.EmployeeDataService) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// metricsRequest carries one day of readings. Every field is optional:
// absent fields never overwrite stored values.
type metricsRequest struct {
	RestingHeartRate   *float64 `json:"resting_heart_rate"`
	AvgHeartRate       *float64 `json:"avg_heart_rate"`
	HeartRateVar       *float64 `json:"heart_rate_var"`
	SleepHours         *float64 `json:"sleep_hours"`
	DeepSleepHours     *float64 `json:"deep_sleep_hours"`
	RemSleepHours      *float64 `json:"rem_sleep_hours"`
	Steps              *int     `json:"steps"`
	ExerciseMinutes    *float64 `json:"exercise_minutes"`
	HealthSource       *string  `json:"health_source"`
	HoursWorked        *float64 `json:"hours_worked"`
	OvertimeHours      *float64 `json:"overtime_hours"`
	MeetingCount       *int     `json:"meeting_count"`
	MeetingHours       *float64 `json:"meeting_hours"`
	FocusHours         *float64 `json:"focus_hours"`
	TaskCompletionRate *float64 `json:"task_completion_rate"`
	EmailsSent         *int     `json:"emails_sent"`
	WorkSource         *string  `json:"work_source"`
}

// PUT /api/employees/:id/metrics/:date
func (h *MetricsHandler) UpsertMetrics(c *gin.Context) {
	employeeID, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return
	}
	var req metricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_metrics", err)
		return
	}

	sample := &types.MetricSample{
		EmployeeID:         employeeID,
		Date:               day,
		RestingHeartRate:   req.RestingHeartRate,
		AvgHeartRate:       req.AvgHeartRate,
		HeartRateVar:       req.HeartRateVar,
		SleepHours:         req.SleepHours,
		DeepSleepHours:     req.DeepSleepHours,
		RemSleepHours:      req.RemSleepHours,
		Steps:              req.Steps,
		ExerciseMinutes:    req.ExerciseMinutes,
		HealthSource:       req.HealthSource,
		HoursWorked:        req.HoursWorked,
		OvertimeHours:      req.OvertimeHours,
		MeetingCount:       req.MeetingCount,
		MeetingHours:       req.MeetingHours,
		FocusHours:         req.FocusHours,
		TaskCompletionRate: req.TaskCompletionRate,
		EmailsSent:         req.EmailsSent,
		WorkSource:         req.WorkSource,
	}
	if err := h.svc.UpsertMetrics(c.Request.Context(), sample); err != nil {
		respondServiceError(c, "upsert_metrics_failed", err)
		return
	}
	response.RespondOK(c, sample)
}
