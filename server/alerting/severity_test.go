package alerting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		value     float64
		threshold float64
		expected  Severity
	}{
		{5.5, 3.5, CRITICAL},
		{5.25, 3.5, HIGH},
		{4.0, 3.5, HIGH},
		{3.5, 3.5, NORMAL},
		{100, 120, NORMAL},
		{180, 120, HIGH},
		{180.01, 120, CRITICAL},
		{-1, 2.0, NORMAL},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v over %v", tc.value, tc.threshold), func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.value, tc.threshold))
		})
	}
}

func TestClassifyAcrossDefaultThresholds(t *testing.T) {
	for metric, threshold := range DefaultThresholds {
		t.Run(metric, func(t *testing.T) {
			assert.Equal(t, NORMAL, Classify(threshold, threshold))
			assert.Equal(t, HIGH, Classify(threshold*1.2, threshold))
			assert.Equal(t, HIGH, Classify(threshold*CRITICAL_FACTOR, threshold))
			assert.Equal(t, CRITICAL, Classify(threshold*1.6, threshold))
		})
	}
}
