package main

import (
	"math"
	"sort"
)

// calculateMedian computes the statistical median of values, ignoring NaN
// entries. For an even number of values the two central order statistics are
// averaged. Returns NaN when no usable values remain.
func calculateMedian(values []float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sorted = append(sorted, v)
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	if len(sorted)%2 == 0 {
		return (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}
	return sorted[len(sorted)/2]
}
