// Package table holds one electrical measurement as three parallel
// float64 columns: time (s), voltage (V) and current (A).
//
// The representation is deliberately structure-of-arrays: every analysis
// stage in pundkit walks whole columns, and resampling mismatched pulse
// windows is a slice operation rather than a struct shuffle.
//
// Tables are built either directly from slices (New, FromColumns) or from
// a vendor CSV export (ReadCSV, Load). CSV files may carry a header row
// naming the three columns, or exactly three unnamed numeric columns in
// time/voltage/current order.
package table
