package alerting

import "sort"

// DefaultThresholds maps each supported metric to the value above which it raises an alert.
var DefaultThresholds = map[string]float64{
	"water_level":  3.5,
	"wind_speed":   120.0,
	"rainfall_24h": 100.0,
	"wave_height":  5.0,
	"storm_surge":  2.0,
}

// Thresholds is a read-only threshold table, built once at startup.
type Thresholds struct {
	values map[string]float64
}

// NewThresholds returns DefaultThresholds with overrides applied on top.
func NewThresholds(overrides map[string]float64) Thresholds {
	values := make(map[string]float64, len(DefaultThresholds)+len(overrides))
	for metric, threshold := range DefaultThresholds {
		values[metric] = threshold
	}
	for metric, threshold := range overrides {
		values[metric] = threshold
	}

	return Thresholds{values: values}
}

func (t Thresholds) Lookup(metric string) (float64, bool) {
	threshold, ok := t.values[metric]
	return threshold, ok
}

// Metrics returns the recognized metric names in sorted order.
func (t Thresholds) Metrics() []string {
	names := make([]string, 0, len(t.values))
	for metric := range t.values {
		names = append(names, metric)
	}
	sort.Strings(names)

	return names
}

// Map returns a copy of the table.
func (t Thresholds) Map() map[string]float64 {
	values := make(map[string]float64, len(t.values))
	for metric, threshold := range t.values {
		values[metric] = threshold
	}

	return values
}
