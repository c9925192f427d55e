package signal

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
// NaN inputs propagate; use MeanFinite when the data may carry dropouts.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return stat.Mean(xs, nil)
}

// MeanFinite returns the mean of the finite values in xs, ignoring NaN and
// ±Inf samples. Returns 0 when no finite value is present.
func MeanFinite(xs []float64) float64 {
	var sum float64
	var n int
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// MeanAbs returns the mean absolute value of xs, or 0 for an empty slice.
func MeanAbs(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return floats.Norm(xs, 1) / float64(len(xs))
}

// StdDev returns the sample standard deviation of xs.
// Fewer than two samples have no spread; that degenerates to 0 rather
// than gonum's NaN so thresholds built on it stay well-defined.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	return stat.StdDev(xs, nil)
}

// MaxAbs returns the largest absolute value in xs, or 0 for an empty slice.
func MaxAbs(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return floats.Norm(xs, math.Inf(1))
}

// Sign returns -1, 0 or +1 for negative, zero (or NaN) and positive x.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Diff returns the same-length first difference of xs: out[0] = 0,
// out[i] = xs[i] - xs[i-1].
func Diff(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		out[i] = xs[i] - xs[i-1]
	}

	return out
}

// MovingMedian applies a centered moving-median filter of the given window
// width. The window is clamped at the edges, so the output has the same
// length as the input. A window of 1 (or less) returns a copy.
func MovingMedian(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	if window <= 1 {
		copy(out, xs)

		return out
	}

	half := window / 2
	buf := make([]float64, 0, window)
	for i := range xs {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(xs) {
			hi = len(xs)
		}
		buf = append(buf[:0], xs[lo:hi]...)
		sort.Float64s(buf)
		mid := len(buf) / 2
		if len(buf)%2 == 1 {
			out[i] = buf[mid]
		} else {
			out[i] = (buf[mid-1] + buf[mid]) / 2
		}
	}

	return out
}

// ResampleNearest maps src onto n samples by picking the nearest source
// index at evenly spaced fractional positions spanning src. It is the
// resampling used to align mismatched pulse windows before subtraction;
// no interpolation between samples is performed.
func ResampleNearest(src []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(src) == 0 {
		return out
	}
	if len(src) == 1 || n == 1 {
		for i := range out {
			out[i] = src[0]
		}

		return out
	}

	step := float64(len(src)-1) / float64(n-1)
	for i := range out {
		j := int(math.Round(float64(i) * step))
		if j >= len(src) {
			j = len(src) - 1
		}
		out[i] = src[j]
	}

	return out
}
