package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrolab/pundkit/pund"
	"github.com/ferrolab/pundkit/table"
)

var flagOut string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <measurement.csv>",
	Short: "Augment a PUND measurement with switching current and charge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}
		if opts.Logger != nil {
			defer func() { _ = opts.Logger.Sync() }()
		}

		tbl, err := table.Load(args[0])
		if err != nil {
			return err
		}
		res, err := pund.Analyze(tbl, &opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagOut != "" {
			f, cerr := os.Create(flagOut)
			if cerr != nil {
				return fmt.Errorf("create %s: %w", flagOut, cerr)
			}
			defer f.Close()
			out = f
		}
		if err = res.WriteCSV(out); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "pulses=%d groups=%d remnant_charge=%g C\n",
			len(res.Pulses), len(res.Groups), res.RemnantCharge())

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the augmented CSV here instead of stdout")
}
