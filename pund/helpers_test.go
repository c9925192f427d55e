package pund_test

import (
	"math"
	"testing"

	"github.com/ferrolab/pundkit/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Synthetic waveform geometry shared by the tests: triangular pulses of
// waveWidth samples separated (and preceded, and followed) by waveGap flat
// samples, sampled every waveDT seconds.
const (
	waveWidth = 25
	waveGap   = 15
	waveDT    = 1e-5
	waveAmp   = 0.1 // |current| inside a pulse, amps
)

// pundPeaks is a valid single-repetition peak pattern:
// poling, P, U, N, D with sign(poling) = -sign(P), etc.
var pundPeaks = []float64{-1, 1, 1, -1, -1}

// triangle appends a width-sample triangular excursion peaking at peak.
func triangle(dst []float64, peak float64, width int) []float64 {
	mid := width / 2
	for k := 0; k < width; k++ {
		frac := 1 - math.Abs(float64(k-mid))/float64(mid)
		dst = append(dst, peak*frac)
	}

	return dst
}

// synthWave builds the voltage trace for the given pulse peaks and a
// matching monotonic time column.
func synthWave(peaks []float64) (tm, voltage []float64) {
	voltage = append(voltage, make([]float64, waveGap)...)
	for _, pk := range peaks {
		voltage = triangle(voltage, pk, waveWidth)
		voltage = append(voltage, make([]float64, waveGap)...)
	}
	tm = make([]float64, len(voltage))
	for i := range tm {
		tm[i] = float64(i) * waveDT
	}

	return tm, voltage
}

// signCurrent derives a current that tracks the voltage sign exactly:
// i = waveAmp * sign(v). Paired pulses then have identical current
// profiles, so the true switching current is zero by construction.
func signCurrent(voltage []float64) []float64 {
	out := make([]float64, len(voltage))
	for i, v := range voltage {
		switch {
		case v > 0:
			out[i] = waveAmp
		case v < 0:
			out[i] = -waveAmp
		}
	}

	return out
}

// pulseSpan returns the sample range [start, end) occupied by the idx-th
// (0-based) synthetic pulse, gaps excluded.
func pulseSpan(idx int) (start, end int) {
	start = waveGap + idx*(waveWidth+waveGap)

	return start, start + waveWidth
}

// synthTable assembles a complete measurement table for the given peaks.
func synthTable(t *testing.T, peaks []float64) *table.Table {
	t.Helper()
	tm, voltage := synthWave(peaks)
	tbl, err := table.New(tm, voltage, signCurrent(voltage))
	require.NoError(t, err)

	return tbl
}

// assertSameFloats compares two float columns treating NaN as equal to NaN.
func assertSameFloats(t *testing.T, want, got []float64, name string) {
	t.Helper()
	require.Len(t, got, len(want), name)
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "%s[%d]: want NaN, got %v", name, i, got[i])

			continue
		}
		assert.Equal(t, want[i], got[i], "%s[%d]", name, i)
	}
}
