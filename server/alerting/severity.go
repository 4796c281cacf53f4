package alerting

type Severity string

const (
	NORMAL   Severity = "NORMAL"
	HIGH     Severity = "HIGH"
	CRITICAL Severity = "CRITICAL"
)

const CRITICAL_FACTOR = 1.5

// Classify grades value against threshold. Values equal to a boundary fall in the lower grade.
func Classify(value, threshold float64) Severity {
	switch {
	case value > threshold*CRITICAL_FACTOR:
		return CRITICAL
	case value > threshold:
		return HIGH
	}

	return NORMAL
}
