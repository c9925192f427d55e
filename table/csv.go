package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a measurement CSV from disk. See ReadCSV for the format.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a measurement table from CSV.
//
// Two layouts are accepted:
//   - a header row containing (at least) the columns "time", "voltage" and
//     "current" (case-insensitive, surrounding whitespace ignored), in any
//     order, followed by data rows;
//   - no header and exactly three numeric columns, taken as time, voltage,
//     current in that order.
//
// Cells must parse as float64; "NaN" and "Inf" are accepted so exporters
// may mark dropped samples.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	ti, vi, ci, hasHeader, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}
	data := rows
	if hasHeader {
		data = rows[1:]
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{
		Time:    make([]float64, 0, len(data)),
		Voltage: make([]float64, 0, len(data)),
		Current: make([]float64, 0, len(data)),
	}
	for ri, row := range data {
		cell := func(col int) (float64, error) {
			if col >= len(row) {
				return 0, fmt.Errorf("%w: row %d has %d fields, need column %d",
					ErrBadCell, ri+1, len(row), col+1)
			}
			v, perr := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if perr != nil {
				return 0, fmt.Errorf("%w: row %d column %d: %q", ErrBadCell, ri+1, col+1, row[col])
			}

			return v, nil
		}
		tv, err := cell(ti)
		if err != nil {
			return nil, err
		}
		vv, err := cell(vi)
		if err != nil {
			return nil, err
		}
		cv, err := cell(ci)
		if err != nil {
			return nil, err
		}
		t.Time = append(t.Time, tv)
		t.Voltage = append(t.Voltage, vv)
		t.Current = append(t.Current, cv)
	}

	return t, nil
}

// locateColumns decides whether the first row is a header and maps the
// three canonical columns to field indices.
func locateColumns(first []string) (ti, vi, ci int, hasHeader bool, err error) {
	numeric := true
	for _, f := range first {
		if _, perr := strconv.ParseFloat(strings.TrimSpace(f), 64); perr != nil {
			numeric = false

			break
		}
	}
	if numeric {
		// Headerless export: positional contract.
		if len(first) != 3 {
			return 0, 0, 0, false, fmt.Errorf("%w: headerless csv must have exactly 3 columns, got %d",
				ErrMissingColumn, len(first))
		}

		return 0, 1, 2, false, nil
	}

	idx := map[string]int{}
	for i, f := range first {
		idx[strings.ToLower(strings.TrimSpace(f))] = i
	}
	find := func(name string) (int, error) {
		if i, ok := idx[name]; ok {
			return i, nil
		}

		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	if ti, err = find(ColTime); err != nil {
		return 0, 0, 0, false, err
	}
	if vi, err = find(ColVoltage); err != nil {
		return 0, 0, 0, false, err
	}
	if ci, err = find(ColCurrent); err != nil {
		return 0, 0, 0, false, err
	}

	return ti, vi, ci, true, nil
}
