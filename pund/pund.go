package pund

import (
	"math"

	"github.com/ferrolab/pundkit/table"
)

// Analyze runs the full PUND pipeline over t and returns the augmented
// table. A nil opts means DefaultOptions. The input table is never
// mutated; on error no partial result is returned.
//
// Errors: ErrOptionViolation, table.ErrMissingColumn / ErrLengthMismatch /
// ErrEmpty (input shape, checked before any stage runs), ErrNoValidPulses,
// ErrInconsistentPolarity, ErrUnexpectedPulseOrdering.
//
// Complexity: O(N·W) time for segmentation (W = MedianWindow), O(N) for
// every other stage; O(N) memory, all freshly allocated per call.
func Analyze(t *table.Table, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	log := o.logger()

	n := t.Len()
	src := t.Clone()
	res := &Result{
		Time:             src.Time,
		Voltage:          src.Voltage,
		Current:          src.Current,
		Polarity:         make([]int8, n),
		PulseIndex:       make([]int32, n),
		SwitchingCurrent: make([]float64, n),
		CumulativeCharge: nanColumn(n),
	}

	correctBaseline(res.Current, o.BaselineSamples, log)

	pulses, err := segment(res.Voltage, &o, log)
	if err != nil {
		return nil, err
	}
	res.Pulses = pulses

	if err = alignPolarity(res.Voltage, res.Current, pulses, log); err != nil {
		return nil, err
	}

	groups, err := groupPulses(res.Voltage, pulses, log)
	if err != nil {
		return nil, err
	}
	res.Groups = groups

	markRoles(res)
	extractSwitching(res)
	integrateCharge(res)

	return res, nil
}

// nanColumn allocates a column prefilled with NaN ("not-a-value").
func nanColumn(n int) []float64 {
	out := make([]float64, n)
	nan := math.NaN()
	for i := range out {
		out[i] = nan
	}

	return out
}
