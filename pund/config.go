package pund

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads a YAML tuning file and overlays it on DefaultOptions,
// so a file only needs to name the thresholds it changes:
//
//	min_pulse_len: 100
//	derivative_factor: 4.0
//
// The merged options are validated before being returned.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("pund: read options %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("pund: parse options %s: %w", path, err)
	}
	if err = opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}
