// Package pundkit analyzes PUND (Positive-Up-Negative-Down) ferroelectric
// measurement waveforms: it detects the five-pulse test pattern in a raw
// (time, voltage, current) series and extracts the true switching charge.
//
// 🚀 What is pundkit?
//
//	A small toolkit for ferroelectric device characterization, built
//	around one core operation:
//		• table/  — columnar (time, voltage, current) measurement tables + CSV I/O
//		• signal/ — smoothing & statistics primitives (moving median, σ, resampling)
//		• pund/   — the PUND pipeline: baseline → segmentation → polarity →
//		            grouping → P−U / N−D subtraction → gated charge integration
//		• render/ — analysis figures via gonum/plot
//		• cmd/pundctl — command-line wrapper for batch use
//
// ✨ Why choose pundkit?
//
//   - Deterministic – Analyze is a pure function of its input table
//   - Honest failure modes – pulse-quality problems surface as typed errors,
//     never as silently wrong charge numbers
//   - Tunable – every heuristic threshold lives in pund.Options, so one
//     codepath serves low-rate bench setups and fast pulse testers alike
//   - Concurrency-safe – no shared state; run one Analyze per goroutine
//
// Quick start:
//
//	tbl, err := table.Load("die07_pund.csv")
//	if err != nil { ... }
//	res, err := pund.Analyze(tbl, nil) // nil → pund.DefaultOptions()
//	if err != nil { ... }
//	fmt.Println("remnant charge:", res.RemnantCharge())
//
//	go get github.com/ferrolab/pundkit/pund
package pundkit
