package cpu

import "math"

// Reductions accumulate in float64 regardless of T so that float32 inputs
// keep their precision across long runs. Callers guarantee non-empty input.

// Sum returns the sum of all elements.
func Sum[T Float](a []T) float64 {
	var sum float64
	for _, v := range a {
		sum += float64(v)
	}
	return sum
}

// SumSquaredDiff returns sum_i (a[i] - mean)^2.
func SumSquaredDiff[T Float](a []T, mean float64) float64 {
	var sum float64
	for _, v := range a {
		d := float64(v) - mean
		sum += d * d
	}
	return sum
}

// Min returns the smallest element.
func Min[T Float](a []T) T {
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest element.
func Max[T Float](a []T) T {
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Argmax returns the index of the largest element.
// The strict comparison keeps the first index among equal maxima.
func Argmax[T Float](a []T) int {
	best := 0
	for i := 1; i < len(a); i++ {
		if a[i] > a[best] {
			best = i
		}
	}
	return best
}

// Argmin returns the index of the smallest element, first index on ties.
func Argmin[T Float](a []T) int {
	best := 0
	for i := 1; i < len(a); i++ {
		if a[i] < a[best] {
			best = i
		}
	}
	return best
}

// SumCols sums each column of the (rows, cols) buffer a into dst[cols].
func SumCols[T Float](dst []float64, a []T, cols int) {
	for c := range dst {
		dst[c] = 0
	}
	for off := 0; off < len(a); off += cols {
		for c := 0; c < cols; c++ {
			dst[c] += float64(a[off+c])
		}
	}
}

// SumSquaredDiffCols computes, per column c, sum_r (a[r,c] - means[c])^2 into dst.
func SumSquaredDiffCols[T Float](dst []float64, a []T, means []float64, cols int) {
	for c := range dst {
		dst[c] = 0
	}
	for off := 0; off < len(a); off += cols {
		for c := 0; c < cols; c++ {
			d := float64(a[off+c]) - means[c]
			dst[c] += d * d
		}
	}
}

// MinCols writes the minimum of each column into dst.
func MinCols[T Float](dst, a []T, cols int) {
	copy(dst, a[:cols])
	for off := cols; off < len(a); off += cols {
		for c := 0; c < cols; c++ {
			if a[off+c] < dst[c] {
				dst[c] = a[off+c]
			}
		}
	}
}

// MaxCols writes the maximum of each column into dst.
func MaxCols[T Float](dst, a []T, cols int) {
	copy(dst, a[:cols])
	for off := cols; off < len(a); off += cols {
		for c := 0; c < cols; c++ {
			if a[off+c] > dst[c] {
				dst[c] = a[off+c]
			}
		}
	}
}

// PopulationStd converts a sum of squared deviations over n samples into a
// population standard deviation.
func PopulationStd(sumSq float64, n int) float64 {
	return math.Sqrt(sumSq / float64(n))
}
