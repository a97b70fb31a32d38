// Command chartrange loads point series from files into a chart pane and
// prints the auto-scaled axis ranges and bar widths as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/kofi-q/chart-go"
	"github.com/kofi-q/chart-go/config"
	"github.com/kofi-q/chart-go/internal/slogx"
	"github.com/kofi-q/chart-go/source"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	kind       string
	sheet      string
	header     bool
	pretty     bool
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "chartrange [flags] file...",
		Short: "Compute axis ranges and bar widths for point series",
		Long: `chartrange loads each csv, parquet or xlsx file as one curve,
auto-scales the pane axes and prints the per-curve ranges and bar widths.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML pane configuration")
	flags.StringVarP(&opts.kind, "kind", "k", "line", "curve kind: line, bar, errorbar, hilowbar, pie")
	flags.StringVar(&opts.sheet, "sheet", "", "worksheet read from xlsx files (default: first)")
	flags.BoolVar(&opts.header, "header", false, "skip the first row of csv and xlsx files")
	flags.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")

	return cmd
}

type rangeJSON struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

type curveJSON struct {
	Label    string     `json:"label"`
	Kind     string     `json:"kind"`
	Points   int        `json:"points"`
	Range    *rangeJSON `json:"range,omitempty"`
	BarWidth float64    `json:"bar_width"`
}

type axisJSON struct {
	Type  string    `json:"type"`
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Ticks []float64 `json:"ticks"`
}

type report struct {
	ScaleFactor  float64             `json:"scale_factor"`
	ClusterWidth float64             `json:"cluster_width"`
	Curves       []curveJSON         `json:"curves"`
	Axes         map[string]axisJSON `json:"axes"`
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(stdout, stderr io.Writer, opts options, files []string) error {
	log := slogx.New(stderr, opts.logLevel)

	kind, ok := chart.ParseCurveKind(opts.kind)
	if !ok {
		return fmt.Errorf("unknown curve kind %q", opts.kind)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	pane, err := cfg.NewPane()
	if err != nil {
		return err
	}

	var rot chart.ColorSymbolRotator
	srcOpts := source.Options{Sheet: opts.sheet, Header: opts.header, Logger: log}
	for _, path := range files {
		pts, err := source.Load(path, srcOpts)
		if err != nil {
			log.Error("skipping file", "path", path, "err", err)
			continue
		}
		label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		pane.AddCurve(label, kind, pts).MakeUnique(&rot)
	}
	if len(pane.Curves) == 0 {
		return fmt.Errorf("no curves loaded from %d file(s)", len(files))
	}

	pane.AxisChange()
	log.Debug("axes changed",
		"curves", len(pane.Curves),
		"bars", pane.NumClusterableBars(),
		"cluster_scale_width", pane.BarSettings.ClusterScaleWidth)

	out := buildReport(pane)

	enc := json.NewEncoder(stdout)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func axisReport(a *chart.Axis) axisJSON {
	ticks, _ := a.Scale.Ticks()
	return axisJSON{
		Type:  a.Scale.Type.String(),
		Min:   a.Scale.Min,
		Max:   a.Scale.Max,
		Ticks: ticks,
	}
}

func buildReport(pane *chart.Pane) report {
	out := report{
		ScaleFactor:  pane.ScaleFactor(),
		ClusterWidth: pane.ClusterWidth(),
		Axes: map[string]axisJSON{
			"x": axisReport(pane.XAxis),
			"y": axisReport(pane.YAxes[0]),
		},
	}
	for _, c := range pane.Curves {
		cj := curveJSON{
			Label:    c.Label,
			Kind:     c.Kind.String(),
			Points:   c.NPts(),
			BarWidth: c.BarWidth(pane),
		}
		if r, found := c.Range(pane); found {
			cj.Range = &rangeJSON{XMin: r.XMin, XMax: r.XMax, YMin: r.YMin, YMax: r.YMax}
		}
		out.Curves = append(out.Curves, cj)
	}
	return out
}
