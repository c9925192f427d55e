package pund

import "github.com/ferrolab/pundkit/signal"

// extractSwitching fills the SwitchingCurrent column: for each validated
// group, the sample-wise differences I[P]−I[U] and I[N]−I[D]. When the
// paired windows differ in length, the non-switching window is resampled
// onto the switching window by nearest-index selection (linear
// interpolation is a known possible refinement, deliberately not applied
// here). Positions outside P and N windows stay at 0.
func extractSwitching(res *Result) {
	for _, grp := range res.Groups {
		subtractPair(res, grp.P, grp.U)
		subtractPair(res, grp.N, grp.D)
	}
}

// subtractPair writes current[sw] − current[ref] into the switching
// window sw of the SwitchingCurrent column.
func subtractPair(res *Result, sw, ref Pulse) {
	refCur := res.Current[ref.Start:ref.End]
	if ref.Len() != sw.Len() {
		refCur = signal.ResampleNearest(refCur, sw.Len())
	}
	for i := 0; i < sw.Len(); i++ {
		res.SwitchingCurrent[sw.Start+i] = res.Current[sw.Start+i] - refCur[i]
	}
}

// integrateCharge computes the running trapezoidal integral of the
// switching current, gated to P and N windows: with 1-based pulse
// numbering, PulseIndex mod 5 == 2 selects P and == 4 selects N. Gated
// samples receive the accumulator value; everything else keeps NaN. The
// accumulator is never reset between groups, so charge integrates
// cumulatively across the whole sequence and drift/asymmetry between
// repetitions stays visible.
func integrateCharge(res *Result) {
	var q float64
	for i := range res.Time {
		role := res.PulseIndex[i] % rolesPerGroup
		if role != roleP && role != roleN {
			continue
		}
		var dt float64
		if i > 0 {
			dt = res.Time[i] - res.Time[i-1]
		}
		q += res.SwitchingCurrent[i] * dt
		res.CumulativeCharge[i] = q
	}
}
