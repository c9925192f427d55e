// Command pundctl analyzes PUND ferroelectric measurement CSV files from
// the command line: it augments the table with switching current and
// cumulative charge, and optionally renders the analysis figure.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
