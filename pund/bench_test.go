package pund_test

import (
	"testing"

	"github.com/ferrolab/pundkit/pund"
	"github.com/ferrolab/pundkit/table"
)

// benchmarkAnalyze runs the pipeline over reps synthetic PUND repetitions.
// It resets the timer after waveform construction and fails on unexpected
// errors.
func benchmarkAnalyze(b *testing.B, reps int) {
	var peaks []float64
	for r := 0; r < reps; r++ {
		peaks = append(peaks, pundPeaks...)
	}
	tm, voltage := synthWave(peaks)
	tbl, err := table.New(tm, voltage, signCurrent(voltage))
	if err != nil {
		b.Fatalf("table: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pund.Analyze(tbl, nil); err != nil {
			b.Fatalf("Analyze failed: %v", err)
		}
	}
}

// BenchmarkAnalyze_OneGroup measures a single five-pulse repetition.
func BenchmarkAnalyze_OneGroup(b *testing.B) {
	benchmarkAnalyze(b, 1)
}

// BenchmarkAnalyze_TenGroups measures a 50-pulse endurance-style sweep.
func BenchmarkAnalyze_TenGroups(b *testing.B) {
	benchmarkAnalyze(b, 10)
}
