package pund_test

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/ferrolab/pundkit/pund"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResult_WriteCSV exports an analysis and checks shape, header and
// NaN round-tripping.
func TestResult_WriteCSV(t *testing.T) {
	tbl := synthTable(t, pundPeaks)
	res, err := pund.Analyze(tbl, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, tbl.Len()+1)

	assert.Equal(t, []string{
		"time", "voltage", "current",
		"polarity", "pulse_index", "switching_current", "cumulative_charge",
	}, rows[0])

	// The first sample sits outside any pulse: charge must export as NaN.
	v, err := strconv.ParseFloat(rows[1][6], 64)
	require.NoError(t, err)
	assert.True(t, v != v, "cumulative_charge outside pulses must round-trip as NaN")
}
