package pund

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Pulse roles within one PUND repetition, in recorded order. The values
// double as the 1-based pulse numbering written to Result.PulseIndex, so
// index%rolesPerGroup identifies the role of any grouped pulse (D wraps
// to 0).
const (
	rolePoling int32 = iota + 1
	roleP
	roleU
	roleN
	roleD
	rolesPerGroup = 5
)

// Pulse is one detected triangular voltage excursion, as a half-open
// sample range [Start, End) into the table.
type Pulse struct {
	Start int
	End   int
}

// Len reports the number of samples in the pulse window.
func (p Pulse) Len() int { return p.End - p.Start }

// PulseGroup is one complete PUND repetition: an ordered quintuple of
// detected pulses. The voltage-sign invariant is
// sign(Poling) = −sign(P), sign(U) = sign(P), sign(N) = −sign(P),
// sign(D) = −sign(P).
type PulseGroup struct {
	Poling Pulse
	P      Pulse
	U      Pulse
	N      Pulse
	D      Pulse
}

// Options carries every heuristic threshold of the pipeline, so the
// algorithm can be retuned for different sampling rates without touching
// its logic. The yaml tags allow loading a tuning file via LoadOptions.
type Options struct {
	// BaselineSamples is how many leading current samples form the
	// constant-offset estimate (capped at the table length).
	BaselineSamples int `yaml:"baseline_samples"`

	// MedianWindow is the width of the moving-median filter applied to the
	// voltage derivative before thresholding.
	MedianWindow int `yaml:"median_window"`

	// NoiseRefSamples caps the number of leading smoothed-derivative
	// samples used for the noise-scale estimate; the window is
	// min(NoiseRefSamples, N/NoiseWindowDivisor).
	NoiseRefSamples    int `yaml:"noise_ref_samples"`
	NoiseWindowDivisor int `yaml:"noise_window_divisor"`

	// DerivativeFactor marks a sample as "in transition" when the smoothed
	// derivative magnitude exceeds DerivativeFactor × noise scale.
	DerivativeFactor float64 `yaml:"derivative_factor"`

	// GapRadius closes gaps inside a pulse: a non-edge sample is marked if
	// any sample within ±GapRadius of it is marked, so one triangular ramp
	// up+down survives as a single contiguous run.
	GapRadius int `yaml:"gap_radius"`

	// MinPulseLen rejects candidate runs shorter than this many samples.
	// 20 suits fast pulse testers; low-rate acquisitions were originally
	// tuned with 100.
	MinPulseLen int `yaml:"min_pulse_len"`

	// AmplitudeFactor and AmplitudeRefSamples reject runs whose peak
	// |voltage| is below AmplitudeFactor × mean |voltage| of the first
	// min(AmplitudeRefSamples, N) samples.
	AmplitudeFactor     float64 `yaml:"amplitude_factor"`
	AmplitudeRefSamples int     `yaml:"amplitude_ref_samples"`

	// Debug enables the diagnostic side channel on Logger. With Debug
	// false, or Logger nil, nothing is emitted. The channel never affects
	// the analysis outcome.
	Debug  bool        `yaml:"debug"`
	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns the thresholds the algorithm was tuned with.
func DefaultOptions() Options {
	return Options{
		BaselineSamples:     10,
		MedianWindow:        9,
		NoiseRefSamples:     10,
		NoiseWindowDivisor:  10,
		DerivativeFactor:    5.0,
		GapRadius:           5,
		MinPulseLen:         20,
		AmplitudeFactor:     5.0,
		AmplitudeRefSamples: 9,
	}
}

// Validate reports ErrOptionViolation for out-of-range fields.
func (o *Options) Validate() error {
	checks := []struct {
		bad  bool
		what string
	}{
		{o.BaselineSamples < 1, fmt.Sprintf("BaselineSamples must be >= 1 (%d)", o.BaselineSamples)},
		{o.MedianWindow < 1, fmt.Sprintf("MedianWindow must be >= 1 (%d)", o.MedianWindow)},
		{o.NoiseRefSamples < 1, fmt.Sprintf("NoiseRefSamples must be >= 1 (%d)", o.NoiseRefSamples)},
		{o.NoiseWindowDivisor < 1, fmt.Sprintf("NoiseWindowDivisor must be >= 1 (%d)", o.NoiseWindowDivisor)},
		{o.DerivativeFactor <= 0, fmt.Sprintf("DerivativeFactor must be > 0 (%g)", o.DerivativeFactor)},
		{o.GapRadius < 0, fmt.Sprintf("GapRadius cannot be negative (%d)", o.GapRadius)},
		{o.MinPulseLen < 1, fmt.Sprintf("MinPulseLen must be >= 1 (%d)", o.MinPulseLen)},
		{o.AmplitudeFactor <= 0, fmt.Sprintf("AmplitudeFactor must be > 0 (%g)", o.AmplitudeFactor)},
		{o.AmplitudeRefSamples < 1, fmt.Sprintf("AmplitudeRefSamples must be >= 1 (%d)", o.AmplitudeRefSamples)},
	}
	for _, c := range checks {
		if c.bad {
			return fmt.Errorf("%w: %s", ErrOptionViolation, c.what)
		}
	}

	return nil
}

// logger returns the diagnostic sink: Options.Logger when Debug is set,
// a nop logger otherwise.
func (o *Options) logger() *zap.Logger {
	if o.Debug && o.Logger != nil {
		return o.Logger
	}

	return zap.NewNop()
}

// Result is the input table augmented with the derived columns. Every
// column has exactly the input length.
//
// Current is the baseline-corrected current and, when a uniformly
// inverted probe polarity was detected, the re-aligned (negated) current;
// Time and Voltage are copies of the input.
type Result struct {
	Time    []float64
	Voltage []float64
	Current []float64

	// Polarity is +1 inside P/U pulses, -1 inside N/D pulses, 0 elsewhere
	// (the poling pulse carries no polarity of its own).
	Polarity []int8

	// PulseIndex is the 1-based sequential number of the grouped pulse the
	// sample belongs to (poling=1, P=2, U=3, N=4, D=5, then 6…10, …), and
	// 0 outside any grouped pulse.
	PulseIndex []int32

	// SwitchingCurrent is I[P]−I[U] inside P windows and I[N]−I[D] inside
	// N windows, 0 elsewhere.
	SwitchingCurrent []float64

	// CumulativeCharge is the running trapezoidal integral of
	// SwitchingCurrent over time, defined only inside P and N windows and
	// NaN elsewhere. The accumulator is never reset between repetitions.
	CumulativeCharge []float64

	// Pulses are all detected pulses, in sample order, including any
	// trailing pulses that did not complete a quintuple.
	Pulses []Pulse

	// Groups are the validated PUND repetitions; empty when fewer than
	// five pulses were detected.
	Groups []PulseGroup
}

// RemnantCharge returns the final value of the cumulative switching
// charge, i.e. the net charge after the last completed P/N window.
// Returns 0 when no group was found.
func (r *Result) RemnantCharge() float64 {
	for i := len(r.CumulativeCharge) - 1; i >= 0; i-- {
		if !math.IsNaN(r.CumulativeCharge[i]) {
			return r.CumulativeCharge[i]
		}
	}

	return 0
}
