package scoring

// classifyZone maps the calibrated scores against the resolved cutoffs. Red
// wins whenever the burnout condition holds, even if the readiness condition
// holds too: burnout risk is the safety-critical signal. Percentile-type
// thresholds arrive pre-resolved to numbers, so the comparison is always
// absolute.
func classifyZone(burnoutScore, readinessScore float64, thresholds ResolvedThresholds) string {
	if burnoutScore >= thresholds.BurnoutRedThreshold {
		return ZoneRed
	}
	if readinessScore >= thresholds.ReadinessGreenThreshold {
		return ZoneGreen
	}
	return ZoneYellow
}
