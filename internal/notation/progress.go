package notation

import "math"

// Default thresholds. Both are overridable through project configuration;
// the *At variants take the configured value.
const (
	// NearCompleteFraction is the fill fraction at or above which a
	// progress element counts as near complete.
	NearCompleteFraction = 0.75
	// TimerUrgentMax is the highest remaining timer value that still
	// counts as urgent.
	TimerUrgentMax = 2
)

// CalculateProgress returns the fill percentage rounded to the nearest
// integer and clamped to 0..100. A zero or negative total is 0%.
func CalculateProgress(current, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// IsComplete reports whether the element has filled up.
func IsComplete(current, total int) bool {
	return total > 0 && current >= total
}

// IsNearComplete reports whether the element is at or past the default
// near-complete fraction without being complete. IsNearComplete(3, 4) is
// true; IsNearComplete(2, 4) is false.
func IsNearComplete(current, total int) bool {
	return IsNearCompleteAt(current, total, NearCompleteFraction)
}

func IsNearCompleteAt(current, total int, fraction float64) bool {
	if total <= 0 || IsComplete(current, total) {
		return false
	}
	return float64(current)/float64(total) >= fraction
}

// IsTimerUrgent reports whether a countdown is close to running out:
// above zero but at most TimerUrgentMax.
func IsTimerUrgent(value int) bool {
	return IsTimerUrgentAt(value, TimerUrgentMax)
}

func IsTimerUrgentAt(value, max int) bool {
	return value > 0 && value <= max
}
