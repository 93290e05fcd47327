package scoring

import (
	"time"

	"github.com/google/uuid"
)

const (
	ZoneRed    = "red"
	ZoneYellow = "yellow"
	ZoneGreen  = "green"
)

const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

const (
	CategoryHealth = "health"
	CategoryWork   = "work"
)

// Factor is one named, signed contribution to a score. Weight is the applied
// contribution in score points after personalization and consent filtering;
// negative weights push the burnout score up. Category is kept off the wire:
// the payload field set is a frontend contract.
type Factor struct {
	Name        string  `json:"name"`
	Impact      string  `json:"impact"`
	Value       string  `json:"value"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`

	Category string `json:"-"`
}

type InteractionEffect struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type CalibrationInfo struct {
	Applied     bool    `json:"applied"`
	Message     string  `json:"message"`
	Discrepancy float64 `json:"discrepancy"`
}

// ActiveLifeEvent exposes only the label and adjustment type of an active
// event. Raw health detail never travels with it.
type ActiveLifeEvent struct {
	Label          string `json:"label"`
	AdjustmentType string `json:"adjustmentType"`
}

// ResolvedThresholds is a fully-populated cutoff set after layered
// resolution. Callers never see partial configuration.
type ResolvedThresholds struct {
	BurnoutRedThreshold          float64
	ReadinessGreenThreshold      float64
	InteractionHighThreshold     float64
	InteractionCriticalThreshold float64
	ThresholdType                string
	EnableInteractionEffects     bool
	EnableWeekendAdjustment      bool
	Source                       string
}

const (
	ThresholdSourceSystem   = "system"
	ThresholdSourceOrg      = "organization"
	ThresholdSourceOverride = "employee_override"
)

type ScoreResult struct {
	EmployeeID         uuid.UUID           `json:"employeeId"`
	Date               time.Time           `json:"date"`
	BurnoutScore       float64             `json:"burnoutScore"`
	ReadinessScore     float64             `json:"readinessScore"`
	Zone               string              `json:"zone"`
	Factors            []Factor            `json:"factors"`
	InteractionEffects []InteractionEffect `json:"interactionEffects"`
	Calibration        CalibrationInfo     `json:"calibrationInfo"`
	ActiveLifeEvents   []ActiveLifeEvent   `json:"activeLifeEvents"`

	Thresholds ResolvedThresholds `json:"-"`
}

type Recommendation struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type RecommendationSets struct {
	Personal   []Recommendation `json:"personal"`
	Leadership []Recommendation `json:"leadership"`
}

type ExplanationContext struct {
	InteractionEffects []InteractionEffect `json:"interactionEffects"`
	Calibration        CalibrationInfo     `json:"calibrationInfo"`
	ActiveLifeEvents   []ActiveLifeEvent   `json:"activeLifeEvents"`
}

type Explanation struct {
	Zone            string             `json:"zone"`
	BurnoutScore    float64            `json:"burnoutScore"`
	ReadinessScore  float64            `json:"readinessScore"`
	Factors         []Factor           `json:"factors"`
	Recommendations RecommendationSets `json:"recommendations"`
	Context         ExplanationContext `json:"context"`
}
