package alerting

import (
	"fmt"
	"strings"
	"unicode"
)

// MetricLabel turns a metric key into a title-cased label, e.g. "rainfall_24h" -> "Rainfall 24H".
// A letter is upper-cased when it starts a run of letters and lower-cased otherwise.
func MetricLabel(metric string) string {
	var label strings.Builder
	inWord := false

	for _, r := range strings.ReplaceAll(metric, "_", " ") {
		if !unicode.IsLetter(r) {
			inWord = false
			label.WriteRune(r)
			continue
		}

		if inWord {
			label.WriteRune(unicode.ToLower(r))
		} else {
			label.WriteRune(unicode.ToUpper(r))
		}
		inWord = true
	}

	return label.String()
}

func alertMessage(severity Severity, metric string, value, threshold float64, filters []string) string {
	return fmt.Sprintf(
		"COASTAL THREAT ALERT [%v]\nMetric: %v\nCurrent: %.2f (Threshold: %.2f)\nLocation: %v\nTake immediate precautions!",
		severity,
		MetricLabel(metric),
		value,
		threshold,
		DisplayLocation(filters, DEFAULT_REGION_LABEL),
	)
}

func alertSubject(severity Severity, metric string) string {
	return fmt.Sprintf("[%v] Coastal Threat Alert - %v", severity, MetricLabel(metric))
}

func belowThresholdMessage(value, threshold float64) string {
	return fmt.Sprintf("Value %.2f is below threshold %.2f", value, threshold)
}
