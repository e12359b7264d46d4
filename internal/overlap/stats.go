package overlap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the aggregate statistics for one scan.
type Summary struct {
	Mean   float64
	Median float64
	// StdDev is the population standard deviation.
	StdDev float64
	Count  int
}

// Compute summarises values. ok is false for an empty input. The result does
// not depend on the order of values.
func Compute(values []float64) (Summary, bool) {
	if len(values) == 0 {
		return Summary{}, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, variance := stat.PopMeanVariance(sorted, nil)
	return Summary{
		Mean:   mean,
		Median: median(sorted),
		StdDev: math.Sqrt(variance),
		Count:  len(sorted),
	}, true
}

// median expects sorted input; even counts average the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
