package pund

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV streams the augmented table as CSV with a header row. NaN
// charge cells are written literally as "NaN", which strconv.ParseFloat
// (and the table package's reader) round-trips.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"time", "voltage", "current",
		"polarity", "pulse_index", "switching_current", "cumulative_charge",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("pund: write csv header: %w", err)
	}

	row := make([]string, len(header))
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := range r.Time {
		row[0] = f(r.Time[i])
		row[1] = f(r.Voltage[i])
		row[2] = f(r.Current[i])
		row[3] = strconv.Itoa(int(r.Polarity[i]))
		row[4] = strconv.Itoa(int(r.PulseIndex[i]))
		row[5] = f(r.SwitchingCurrent[i])
		row[6] = f(r.CumulativeCharge[i])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("pund: write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
