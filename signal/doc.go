// Package signal provides the small statistics and smoothing primitives
// the PUND pipeline is built from: finite-tolerant means, standard
// deviation, first differences, centered moving-median smoothing and
// nearest-index resampling.
//
// Where gonum already ships the primitive (mean, standard deviation,
// norms) these are thin guarded wrappers; the moving median and the
// resampler are local because gonum has no equivalent.
package signal
