package config_test

import (
	"os"
	"path/filepath"
	"testing"

	chart "github.com/kofi-q/chart-go"
	"github.com/kofi-q/chart-go/config"
	"github.com/stretchr/testify/require"
)

const sample = `
title: Quarterly
rect: {x: 10, y: 20, width: 800, height: 400}
ignore_initial: true
bars:
  type: stack
  base: y
  min_bar_gap: 0.5
  cluster_scale_width: 2
x_axis:
  type: log
  min: 1
y_axis:
  title: Revenue
  max: 100
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, "Quarterly", cfg.Title)
	require.Equal(t, "stack", cfg.Bars.Type)
	require.Equal(t, 0.5, cfg.Bars.MinBarGap)
	require.Equal(t, chart.DefaultMinClusterGap, cfg.Bars.MinClusterGap)
	require.True(t, cfg.FontsScaled)
	require.Equal(t, "linear", cfg.YAxis.Type)
}

func TestApply(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	pane, err := cfg.NewPane()
	require.NoError(t, err)

	require.Equal(t, chart.RectType{X: 10, Y: 20, Wd: 800, Ht: 400}, pane.Rect)
	require.True(t, pane.IsIgnoreInitial)
	require.Equal(t, chart.BarStack, pane.BarSettings.Type)
	require.Equal(t, chart.BarBaseY, pane.BarSettings.Base)
	require.False(t, pane.BarSettings.ClusterScaleWidthAuto)
	require.Equal(t, 2.0, pane.BarSettings.ClusterScaleWidth)

	x := pane.XAxis.Scale
	require.Equal(t, chart.ScaleLog, x.Type)
	require.False(t, x.MinAuto)
	require.True(t, x.MaxAuto)
	require.Equal(t, 1.0, x.Min)

	y := pane.YAxes[0]
	require.Equal(t, "Revenue", y.Title)
	require.True(t, y.Scale.MinAuto)
	require.False(t, y.Scale.MaxAuto)
	require.Equal(t, 100.0, y.Scale.Max)
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"bars: {type: zigzag}",
		"bars: {base: z}",
		"bars: {min_bar_gap: -1}",
		"x_axis: {type: polar}",
		"y_axis: {min: 5, max: 1}",
		"rect: {width: -3}",
		"x_axis: {type: log, min: 0}",
		"y_axis: {type: log, max: -10}",
	}
	for _, in := range tests {
		_, err := config.Parse([]byte(in))
		require.ErrorIs(t, err, config.ErrInvalid, in)
	}

	_, err := config.Parse([]byte("x_axis: {type: log, min: 1, max: 1000}"))
	require.NoError(t, err)

	_, err = config.Parse([]byte("bars: [1, 2"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pane.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Quarterly", cfg.Title)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
