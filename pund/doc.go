// Package pund extracts ferroelectric switching charge from a raw PUND
// (Positive-Up-Negative-Down) measurement: a five-pulse voltage sequence
// of poling, P, U, N and D triangular pulses recorded as a
// (time, voltage, current) series.
//
// 🚀 What does Analyze do?
//
//	One pass over the table, six internal stages:
//	 1. Baseline correction  — subtract the mean of the leading current
//	    samples (constant leakage/offset would register as false charge).
//	 2. Pulse segmentation   — threshold the median-smoothed voltage
//	    derivative against the lead-in noise floor, close small gaps, and
//	    keep runs long and tall enough to be real pulses.
//	 3. Polarity alignment   — if every detected pulse carries current of
//	    the opposite sign to its voltage, the probe polarity was inverted:
//	    negate the current column. A partial disagreement is an error.
//	 4. Grouping/validation  — split pulses into (poling, P, U, N, D)
//	    quintuples and check the expected voltage-sign pattern.
//	 5. Subtraction          — I_FE = I[P]−I[U] and I[N]−I[D], with the
//	    second window resampled onto the first when lengths differ.
//	 6. Charge integration   — trapezoidal running integral of I_FE,
//	    accumulated only inside P and N windows, NaN everywhere else.
//	    The accumulator is never reset between repetitions, so drift and
//	    asymmetry across the sequence stay visible.
//
// ✨ Guarantees:
//
//   - Pure: identical input ⇒ bit-identical Result; the input Table is
//     never mutated. Safe to call from many goroutines at once.
//   - All-or-nothing: on error no partial Result is returned.
//   - Every output column has exactly the input length.
//
// ⚙️ Usage:
//
//	opts := pund.DefaultOptions()
//	opts.MinPulseLen = 100 // low-rate acquisition
//	res, err := pund.Analyze(tbl, &opts)
//	switch {
//	case errors.Is(err, pund.ErrNoValidPulses):
//	  // not a PUND measurement, or thresholds need tuning
//	case errors.Is(err, pund.ErrInconsistentPolarity):
//	  // corrupted/ambiguous data — do not guess
//	case errors.Is(err, pund.ErrUnexpectedPulseOrdering):
//	  // different protocol or detection misfire
//	}
//
// All errors are data-quality verdicts for this input; none is transient
// and none should be retried. Set Options.Debug plus Options.Logger to
// get thresholds and intermediate statistics on a zap side channel; the
// channel never affects the outcome.
package pund
