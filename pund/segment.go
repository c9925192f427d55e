package pund

import (
	"math"

	"go.uber.org/zap"

	"github.com/ferrolab/pundkit/signal"
)

// correctBaseline subtracts the mean of the first min(samples, N) current
// values from the whole column. Non-finite leading samples are ignored in
// the estimate: a dropout marker must not poison the offset.
func correctBaseline(current []float64, samples int, log *zap.Logger) {
	if samples > len(current) {
		samples = len(current)
	}
	offset := signal.MeanFinite(current[:samples])
	for i := range current {
		current[i] -= offset
	}
	log.Debug("baseline corrected",
		zap.Float64("offset_a", offset),
		zap.Int("samples", samples))
}

// segment detects the triangular voltage pulses. It thresholds the
// median-smoothed first difference of the voltage against the noise floor
// of the lead-in, closes sub-GapRadius gaps so each ramp up+down survives
// as one contiguous run, and filters candidates by length and amplitude.
// Returns ErrNoValidPulses when nothing survives.
func segment(voltage []float64, o *Options, log *zap.Logger) ([]Pulse, error) {
	n := len(voltage)
	deriv := signal.MovingMedian(signal.Diff(voltage), o.MedianWindow)

	noiseN := n / o.NoiseWindowDivisor
	if noiseN > o.NoiseRefSamples {
		noiseN = o.NoiseRefSamples
	}
	if noiseN < 1 {
		noiseN = 1
	}
	noise := signal.StdDev(deriv[:noiseN])
	threshold := o.DerivativeFactor * noise

	marked := make([]bool, n)
	for i, d := range deriv {
		marked[i] = math.Abs(d) > threshold
	}
	expanded := expandMarks(marked, o.GapRadius)

	ampN := o.AmplitudeRefSamples
	if ampN > n {
		ampN = n
	}
	minPeak := o.AmplitudeFactor * signal.MeanAbs(voltage[:ampN])

	var pulses []Pulse
	var rejected int
	for _, c := range contiguousRuns(expanded) {
		if c.Len() < o.MinPulseLen || signal.MaxAbs(voltage[c.Start:c.End]) < minPeak {
			rejected++

			continue
		}
		pulses = append(pulses, c)
	}

	log.Debug("segmentation",
		zap.Float64("noise_scale", noise),
		zap.Float64("derivative_threshold", threshold),
		zap.Float64("min_peak_v", minPeak),
		zap.Int("candidates_rejected", rejected),
		zap.Int("pulses", len(pulses)))

	if len(pulses) == 0 {
		return nil, ErrNoValidPulses
	}

	return pulses, nil
}

// expandMarks marks every non-edge sample that has a marked neighbour
// within ±radius. Works on a copy so marks do not cascade.
func expandMarks(marked []bool, radius int) []bool {
	n := len(marked)
	out := make([]bool, n)
	copy(out, marked)
	for i := radius; i < n-radius; i++ {
		if out[i] {
			continue
		}
		for j := i - radius; j <= i+radius; j++ {
			if marked[j] {
				out[i] = true

				break
			}
		}
	}

	return out
}

// contiguousRuns extracts the maximal runs of true values as half-open
// sample ranges.
func contiguousRuns(marked []bool) []Pulse {
	var runs []Pulse
	start := -1
	for i, m := range marked {
		switch {
		case m && start < 0:
			start = i
		case !m && start >= 0:
			runs = append(runs, Pulse{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Pulse{Start: start, End: len(marked)})
	}

	return runs
}
