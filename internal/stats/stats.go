// Package stats provides the small set of descriptive statistics the cleaning
// pipeline and the profiler rely on.
package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Std computes the population standard deviation in a single pass.
func Std(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := (sumSq / n) - (mean * mean)
	if variance < 0 {
		// Guard against catastrophic cancellation on near-constant data.
		variance = 0
	}
	return math.Sqrt(variance)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Median returns the median value of the slice (allocates a copy).
// The caller is responsible for rejecting empty input where an undefined
// median would be an error; on empty input Median returns 0.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Mode returns the most frequent value and its count. Ties break toward the
// value encountered first, so the result is deterministic for a given input
// order.
func Mode(values []string) (string, int) {
	if len(values) == 0 {
		return "", 0
	}
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	mode, maxCount := "", 0
	for _, v := range order {
		if counts[v] > maxCount {
			maxCount = counts[v]
			mode = v
		}
	}
	return mode, maxCount
}
