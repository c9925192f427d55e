package pund

import "errors"

// Sentinel errors for Analyze. All three data-quality errors are fatal for
// the given input and must not be retried; they are matched with errors.Is.
var (
	// ErrNoValidPulses means segmentation found nothing resembling a PUND
	// waveform. Surface as "not a PUND measurement" or "thresholds need
	// tuning".
	ErrNoValidPulses = errors.New("pund: no valid pulses found")

	// ErrInconsistentPolarity means some, but not all, pulses carry current
	// of the opposite sign to their voltage. The wrapped message reports
	// the k/n mismatch ratio for diagnosis; the ambiguity is never resolved
	// silently.
	ErrInconsistentPolarity = errors.New("pund: inconsistent polarity")

	// ErrUnexpectedPulseOrdering means the detected pulses do not follow
	// the five-pulse voltage-sign pattern: either a different measurement
	// protocol or a detection misfire.
	ErrUnexpectedPulseOrdering = errors.New("pund: unexpected pulse ordering")

	// ErrOptionViolation is returned when an Options field is out of range.
	ErrOptionViolation = errors.New("pund: invalid option supplied")
)
