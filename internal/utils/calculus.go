package utils

import "math"

// IsBetweenIncl определеяет, находится ли точка samplePoint включительно
// между точками bound1 и bound2
func IsBetweenIncl(samplePoint float64, bound1 float64, bound2 float64) bool {
	return bound1 <= samplePoint && samplePoint <= bound2 ||
		bound2 <= samplePoint && samplePoint <= bound1
}

// MinMax returns the smallest and the largest of values.
// For an empty slice it returns +Inf, -Inf.
func MinMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
