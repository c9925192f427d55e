// Package render draws the PUND analysis figure: raw waveforms, extracted
// switching current and gated cumulative charge stacked on one canvas.
package render

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/ferrolab/pundkit/pund"
)

// ErrUnsupportedFormat is returned for output extensions other than
// .png and .svg.
var ErrUnsupportedFormat = errors.New("render: unsupported output format")

// Figure dimensions.
const (
	figWidth  = 18 * vg.Centimeter
	figHeight = 24 * vg.Centimeter
)

// Save writes the three-panel analysis figure for res to path; the format
// follows the file extension (.png or .svg).
func Save(res *pund.Result, path string) error {
	panels, err := buildPanels(res)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	tiles := draw.Tiles{Rows: len(panels), Cols: 1, PadY: vg.Millimeter * 3}
	grid := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		grid[i] = []*plot.Plot{p}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img := vgimg.New(figWidth, figHeight)
		drawGrid(grid, tiles, draw.New(img))
		if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
			return fmt.Errorf("render: write %s: %w", path, err)
		}
	case ".svg":
		svg := vgsvg.New(figWidth, figHeight)
		drawGrid(grid, tiles, draw.New(svg))
		if _, err = svg.WriteTo(f); err != nil {
			return fmt.Errorf("render: write %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return nil
}

func drawGrid(grid [][]*plot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		grid[r][0].Draw(canvases[r][0])
	}
}

// buildPanels assembles the three stacked plots.
func buildPanels(res *pund.Result) ([]*plot.Plot, error) {
	waveforms := plot.New()
	waveforms.Title.Text = "PUND waveforms"
	waveforms.X.Label.Text = "time (s)"
	if err := addLine(waveforms, res.Time, res.Voltage, "voltage (V)", 0); err != nil {
		return nil, err
	}
	if err := addLine(waveforms, res.Time, res.Current, "current (A)", 1); err != nil {
		return nil, err
	}

	switching := plot.New()
	switching.Title.Text = "switching current"
	switching.X.Label.Text = "time (s)"
	switching.Y.Label.Text = "I_FE (A)"
	if err := addLine(switching, res.Time, res.SwitchingCurrent, "", 2); err != nil {
		return nil, err
	}

	charge := plot.New()
	charge.Title.Text = "cumulative switching charge"
	charge.X.Label.Text = "time (s)"
	charge.Y.Label.Text = "Q (C)"
	// Only the gated P/N samples carry a value; the NaN gaps are dropped.
	if err := addLine(charge, res.Time, res.CumulativeCharge, "", 3); err != nil {
		return nil, err
	}

	return []*plot.Plot{waveforms, switching, charge}, nil
}

// addLine appends a finite-sample line to p, with an optional legend name.
func addLine(p *plot.Plot, ts, ys []float64, name string, colorIdx int) error {
	pts := make(plotter.XYs, 0, len(ts))
	for i := range ts {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: ts[i], Y: ys[i]})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: %s line: %w", p.Title.Text, err)
	}
	line.Color = plotutil.Color(colorIdx)
	p.Add(line)
	if name != "" {
		p.Legend.Add(name, line)
	}

	return nil
}
