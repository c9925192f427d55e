package table

import "fmt"

// Canonical column names, matched case-insensitively by FromColumns and ReadCSV.
const (
	ColTime    = "time"
	ColVoltage = "voltage"
	ColCurrent = "current"
)

// Table is one measurement: three parallel columns of equal length.
// Time is expected to be monotonically increasing; Current is the raw
// measured current including parasitic capacitive contributions.
type Table struct {
	Time    []float64
	Voltage []float64
	Current []float64
}

// New builds a Table from three equal-length, non-empty columns.
// The slices are used as-is (not copied).
func New(time, voltage, current []float64) (*Table, error) {
	t := &Table{Time: time, Voltage: voltage, Current: current}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// FromColumns builds a Table from named columns. The three canonical names
// (ColTime, ColVoltage, ColCurrent) must all be present; extra columns are
// ignored. Returns ErrMissingColumn naming the first absent column.
func FromColumns(cols map[string][]float64) (*Table, error) {
	pick := func(name string) ([]float64, error) {
		if c, ok := cols[name]; ok {
			return c, nil
		}

		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	var t Table
	var err error
	if t.Time, err = pick(ColTime); err != nil {
		return nil, err
	}
	if t.Voltage, err = pick(ColVoltage); err != nil {
		return nil, err
	}
	if t.Current, err = pick(ColCurrent); err != nil {
		return nil, err
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Len reports the number of samples.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Time)
}

// Validate checks the structural invariants: all three columns present,
// equal in length, and at least one sample long.
func (t *Table) Validate() error {
	if t == nil {
		return ErrEmpty
	}
	if t.Time == nil {
		return fmt.Errorf("%w: %q", ErrMissingColumn, ColTime)
	}
	if t.Voltage == nil {
		return fmt.Errorf("%w: %q", ErrMissingColumn, ColVoltage)
	}
	if t.Current == nil {
		return fmt.Errorf("%w: %q", ErrMissingColumn, ColCurrent)
	}
	if len(t.Voltage) != len(t.Time) || len(t.Current) != len(t.Time) {
		return fmt.Errorf("%w: time=%d voltage=%d current=%d",
			ErrLengthMismatch, len(t.Time), len(t.Voltage), len(t.Current))
	}
	if len(t.Time) == 0 {
		return ErrEmpty
	}

	return nil
}

// Clone returns a deep copy; mutating the copy never touches the original.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	dup := func(xs []float64) []float64 {
		if xs == nil {
			return nil
		}
		out := make([]float64, len(xs))
		copy(out, xs)

		return out
	}

	return &Table{Time: dup(t.Time), Voltage: dup(t.Voltage), Current: dup(t.Current)}
}
