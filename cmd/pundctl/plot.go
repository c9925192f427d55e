package main

import (
	"github.com/spf13/cobra"

	"github.com/ferrolab/pundkit/pund"
	"github.com/ferrolab/pundkit/render"
	"github.com/ferrolab/pundkit/table"
)

var flagFigure string

var plotCmd = &cobra.Command{
	Use:   "plot <measurement.csv>",
	Short: "Render the PUND analysis figure for a measurement",
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

		return render.Save(res, flagFigure)
	},
}

func init() {
	plotCmd.Flags().StringVarP(&flagFigure, "figure", "f", "pund.png", "output figure path (.png or .svg)")
}
