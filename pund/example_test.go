package pund_test

import (
	"fmt"

	"github.com/ferrolab/pundkit/pund"
	"github.com/ferrolab/pundkit/table"
)

// ExampleAnalyze runs the pipeline over a synthetic single-repetition
// PUND sequence whose paired pulses carry identical current profiles, so
// the extracted switching charge is exactly zero.
func ExampleAnalyze() {
	tm, voltage := synthWave([]float64{-1, 1, 1, -1, -1})
	tbl, err := table.New(tm, voltage, signCurrent(voltage))
	if err != nil {
		fmt.Println("table:", err)

		return
	}

	res, err := pund.Analyze(tbl, nil)
	if err != nil {
		fmt.Println("analyze:", err)

		return
	}

	fmt.Printf("pulses=%d groups=%d remnant=%g\n",
		len(res.Pulses), len(res.Groups), res.RemnantCharge())
	// Output:
	// pulses=5 groups=1 remnant=0
}
