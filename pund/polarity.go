package pund

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/ferrolab/pundkit/signal"
)

// alignPolarity compares, for every detected pulse, the sign of the mean
// voltage against the sign of the mean current over the first half of the
// pulse only — the full-pulse average is biased by capacitive dV/dt
// current around the zero-crossing. Pulses where either sign is zero are
// not compared.
//
// If every compared pulse disagrees, the probe polarity was inverted and
// the whole current column is negated in place. A partial disagreement is
// ambiguous or corrupted data and fails with ErrInconsistentPolarity.
func alignPolarity(voltage, current []float64, pulses []Pulse, log *zap.Logger) error {
	var total, mismatches int
	for _, p := range pulses {
		half := p.Start + (p.Len()+1)/2
		vSign := signal.Sign(signal.Mean(voltage[p.Start:half]))
		iSign := signal.Sign(signal.Mean(current[p.Start:half]))
		if vSign == 0 || iSign == 0 {
			continue
		}
		total++
		if vSign != iSign {
			mismatches++
		}
	}

	log.Debug("polarity check",
		zap.Int("compared", total),
		zap.Int("mismatches", mismatches))

	switch {
	case mismatches == 0:
		return nil
	case mismatches == total:
		// Uniform inversion: the recorded current is globally negated.
		floats.Scale(-1, current)
		log.Debug("current polarity inverted, column negated")

		return nil
	default:
		return fmt.Errorf("%w: %d/%d pulses misaligned", ErrInconsistentPolarity, mismatches, total)
	}
}
