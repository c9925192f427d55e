package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSyntheticCSV builds a one-repetition PUND measurement file.
func writeSyntheticCSV(t *testing.T) string {
	t.Helper()

	const (
		width = 25
		gap   = 15
		dt    = 1e-5
	)
	var voltage []float64
	voltage = append(voltage, make([]float64, gap)...)
	for _, pk := range []float64{-1, 1, 1, -1, -1} {
		mid := width / 2
		for k := 0; k < width; k++ {
			voltage = append(voltage, pk*(1-math.Abs(float64(k-mid))/float64(mid)))
		}
		voltage = append(voltage, make([]float64, gap)...)
	}

	var sb strings.Builder
	sb.WriteString("time,voltage,current\n")
	for i, v := range voltage {
		var cur float64
		switch {
		case v > 0:
			cur = 1e-4
		case v < 0:
			cur = -1e-4
		}
		fmt.Fprintf(&sb, "%g,%g,%g\n", float64(i)*dt, v, cur)
	}

	path := filepath.Join(t.TempDir(), "pund.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))

	return path
}

// TestAnalyzeCommand runs the analyze subcommand end to end.
func TestAnalyzeCommand(t *testing.T) {
	in := writeSyntheticCSV(t)
	out := filepath.Join(t.TempDir(), "augmented.csv")

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"analyze", in, "--out", out})
	t.Cleanup(func() { flagOut = ""; flagConfig = ""; flagDebug = false })

	require.NoError(t, rootCmd.Execute())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "time,voltage,current,polarity,pulse_index,switching_current,cumulative_charge"))
	assert.Contains(t, stderr.String(), "groups=1")
}

// TestBuildOptions_ConfigFile checks the --config overlay path.
func TestBuildOptions_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_pulse_len: 60\n"), 0o644))

	flagConfig = path
	t.Cleanup(func() { flagConfig = ""; flagDebug = false })

	opts, err := buildOptions()
	require.NoError(t, err)
	assert.Equal(t, 60, opts.MinPulseLen)
	assert.False(t, opts.Debug)
}
