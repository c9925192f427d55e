package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ferrolab/pundkit/pund"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "pundctl",
	Short: "PUND ferroelectric switching-charge analysis",
	Long: `pundctl extracts ferroelectric switching charge from PUND measurement
CSV files (time, voltage, current columns). Thresholds can be retuned for
other sampling rates with a YAML file passed via --config.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "YAML tuning file overriding default thresholds")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "emit analysis diagnostics (thresholds, noise scale, pulse counts)")
	rootCmd.AddCommand(analyzeCmd, plotCmd)
}

// buildOptions assembles pund.Options from the persistent flags.
func buildOptions() (pund.Options, error) {
	opts := pund.DefaultOptions()
	if flagConfig != "" {
		var err error
		if opts, err = pund.LoadOptions(flagConfig); err != nil {
			return opts, err
		}
	}
	if flagDebug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return opts, fmt.Errorf("init debug logger: %w", err)
		}
		opts.Debug = true
		opts.Logger = logger
	}

	return opts, nil
}
