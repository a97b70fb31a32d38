// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart_test

import (
	"math"
	"sync"
	"testing"

	chart "github.com/kofi-q/chart-go"
	"github.com/stretchr/testify/require"
)

func TestPaneScaleFactor(t *testing.T) {
	pane := chart.NewPane("", chart.RectType{Wd: 576, Ht: 576})
	require.InDelta(t, 1.0, pane.ScaleFactor(), floatDelta)

	pane.Rect = chart.RectType{Wd: 1000, Ht: 100}
	require.InDelta(t, 150.0/576, pane.ScaleFactor(), floatDelta)

	pane.Rect = chart.RectType{Wd: 200, Ht: 1000}
	require.InDelta(t, 300.0/576, pane.ScaleFactor(), floatDelta)

	pane.Rect = chart.RectType{Wd: 10, Ht: 10}
	require.InDelta(t, 0.1, pane.ScaleFactor(), floatDelta)

	pane.Rect = chart.RectType{Wd: 10, Ht: 0}
	require.Equal(t, 1.0, pane.ScaleFactor())

	pane.Rect = chart.RectType{Wd: 1000, Ht: 1000}
	pane.IsFontsScaled = false
	require.Equal(t, 1.0, pane.ScaleFactor())
}

func TestPaneNumClusterableBars(t *testing.T) {
	pane := chart.NewPane("", chart.RectType{Wd: 100, Ht: 100})
	pane.AddCurve("a", chart.KindBar, nil)
	pane.AddCurve("b", chart.KindLine, nil)
	pane.AddCurve("c", chart.KindHiLowBar, nil)
	pane.AddCurve("d", chart.KindErrorBar, nil)
	pane.AddCurve("e", chart.KindBar, nil)

	require.Equal(t, 3, pane.NumClusterableBars())
	require.Equal(t, []int{0, 2, 4}, pane.BarCurves())

	pane.Curves = pane.Curves[:2]
	require.Equal(t, 1, pane.NumClusterableBars())
}

func barPane(t *testing.T) *chart.Pane {
	t.Helper()

	pane := chart.NewPane("bars", chart.RectType{Wd: 1000, Ht: 500})
	pane.AddCurve("a", chart.KindBar, chart.NewPointPairList(
		chart.Pt(1, 5), chart.Pt(2, 6), chart.Pt(3, 7), chart.Pt(4, 8),
	))
	pane.AddCurve("b", chart.KindBar, chart.NewPointPairList(
		chart.Pt(1, 6), chart.Pt(2, 7), chart.Pt(3, 6), chart.Pt(4, 5),
	))
	pane.AxisChange()
	return pane
}

func TestPaneAxisChangeBars(t *testing.T) {
	pane := barPane(t)

	require.Equal(t, 1.0, pane.XAxis.Scale.Min)
	require.Equal(t, 4.0, pane.XAxis.Scale.Max)
	require.Equal(t, 0.0, pane.YAxes[0].Scale.Min)
	require.Equal(t, 8.0, pane.YAxes[0].Scale.Max)
	require.Equal(t, 1.0, pane.BarSettings.ClusterScaleWidth)
	require.InDelta(t, 1000.0/3, pane.ClusterWidth(), floatDelta)
}

func TestCurveBarWidthCluster(t *testing.T) {
	pane := barPane(t)
	c := pane.Curves[0]

	// 2 bars: 2*(1+0.2) - 0.2 + 1.0
	require.InDelta(t, 1000.0/3/3.2, c.BarWidth(pane), floatDelta)

	// Lines in a bar pane take a bar slot.
	line := pane.AddCurve("line", chart.KindLine, nil)
	require.InDelta(t, 1000.0/3/3.2, line.BarWidth(pane), floatDelta)

	pane.BarSettings.Type = chart.BarStack
	require.InDelta(t, 1000.0/3/2, c.BarWidth(pane), floatDelta)
}

func TestCurveBarWidthErrorBar(t *testing.T) {
	pane := barPane(t)
	c := pane.AddCurve("err", chart.KindErrorBar, nil)
	c.Symbol.Size = 7

	require.InDelta(t, 7*750.0/576, c.BarWidth(pane), floatDelta)

	c.Symbol.Size = 0
	require.Equal(t, 1.0, c.BarWidth(pane))
}

func TestCurveBarWidthHiLow(t *testing.T) {
	pane := barPane(t)
	c := pane.AddCurve("hl", chart.KindHiLowBar, nil)
	c.HiLow = chart.HiLowStyle{Size: 7}

	// 7 * 1.302 rounded
	require.Equal(t, 9.0, c.BarWidth(pane))

	c.HiLow = chart.HiLowStyle{IsAutoSize: true, UserScale: 1}
	// 333.33 / (1 + 1.0) rounded
	require.Equal(t, 167.0, c.BarWidth(pane))

	// Clustered hi-low bars share the cluster; three bar curves now.
	pane.BarSettings.Type = chart.BarClusterHiLow
	require.InDelta(t, 1000.0/3/(3*1.2-0.2+1), c.BarWidth(pane), floatDelta)
}

func TestCurveBarWidthBeforeAxisChange(t *testing.T) {
	pane := chart.NewPane("", chart.RectType{Wd: 100, Ht: 100})
	c := pane.AddCurve("a", chart.KindBar, chart.NewPointPairList(chart.Pt(1, 1)))
	require.Equal(t, 1.0, c.BarWidth(pane))
}

func TestPaneAxisChangeLog(t *testing.T) {
	pane := chart.NewPane("", chart.RectType{Wd: 400, Ht: 300})
	pane.YAxes[0].Scale.Type = chart.ScaleLog
	pane.AddCurve("", chart.KindLine, chart.NewPointPairList(
		chart.Pt(0, -4), chart.Pt(1, 3), chart.Pt(2, 50),
	))
	pane.AxisChange()

	y := pane.YAxes[0].Scale
	require.Equal(t, 1.0, y.Min)
	require.Equal(t, 100.0, y.Max)

	ticks, _ := y.Ticks()
	require.Len(t, ticks, 3)

	// Decades are equally spaced.
	require.InDelta(t, 150.0, y.Transform(10), floatDelta)
}

func TestLogScaleNonPositiveSide(t *testing.T) {
	s := chart.Scale{Type: chart.ScaleLog, Min: 0, Max: 100}
	ticks, _ := s.Ticks()
	require.Empty(t, ticks)

	s = chart.Scale{Type: chart.ScaleLog, Min: -10, Max: -1}
	ticks, _ = s.Ticks()
	require.Empty(t, ticks)

	s = chart.Scale{Type: chart.ScaleLog, Min: 1, Max: math.Inf(1)}
	ticks, _ = s.Ticks()
	require.Empty(t, ticks)

	pane := chart.NewPane("", chart.RectType{Wd: 400, Ht: 300})
	y := pane.YAxes[0]
	y.Scale.Type = chart.ScaleLog
	y.Scale.Min, y.Scale.MinAuto = 0, false
	pane.AddCurve("", chart.KindBar, chart.NewPointPairList(
		chart.Pt(1, 3), chart.Pt(2, 50),
	))
	pane.AxisChange()

	require.Equal(t, 0.0, y.Scale.Min)
	require.Equal(t, 100.0, y.Scale.Max)
	ticks, _ = y.Scale.Ticks()
	require.Empty(t, ticks)

	at10, at100 := y.Scale.Transform(10), y.Scale.Transform(100)
	require.False(t, math.IsNaN(at10))
	require.Equal(t, at10, at100)
}

func TestCurveBarWidthConcurrent(t *testing.T) {
	pane := barPane(t)
	a, b := pane.Curves[0], pane.Curves[1]
	want := a.BarWidth(pane)

	const n = 8
	got := make([]float64, 2*n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(2)
		go func() {
			defer wg.Done()
			got[2*i] = a.BarWidth(pane)
		}()
		go func() {
			defer wg.Done()
			got[2*i+1] = b.BarWidth(pane)
		}()
	}
	wg.Wait()

	for _, w := range got {
		require.InDelta(t, want, w, floatDelta)
	}
	require.Equal(t, 2, pane.NumClusterableBars())
}

func TestPaneAxisChangeFixedSide(t *testing.T) {
	pane := chart.NewPane("", chart.RectType{Wd: 400, Ht: 300})
	pane.YAxes[0].Scale.Min = -50
	pane.YAxes[0].Scale.MinAuto = false
	pane.AddCurve("", chart.KindLine, chart.NewPointPairList(
		chart.Pt(0, 3), chart.Pt(1, 9),
	))
	pane.AxisChange()

	require.Equal(t, -50.0, pane.YAxes[0].Scale.Min)
	require.Equal(t, 10.0, pane.YAxes[0].Scale.Max)
}

func TestPaneAxisChangeHiddenAndEmpty(t *testing.T) {
	pane := chart.NewPane("", chart.RectType{Wd: 400, Ht: 300})
	c := pane.AddCurve("", chart.KindLine, chart.NewPointPairList(chart.Pt(100, 100)))
	c.IsVisible = false
	pane.AxisChange()

	require.Equal(t, 0.0, pane.XAxis.Scale.Min)
	require.Equal(t, 1.0, pane.XAxis.Scale.Max)
}

func TestTickmarks(t *testing.T) {
	ticks, precision := chart.Tickmarks(0, 10)
	require.Equal(t, []float64{0, 2, 4, 6, 8, 10}, ticks)
	require.Equal(t, 0, precision)

	ticks, _ = chart.Tickmarks(3, 3)
	require.Empty(t, ticks)

	_, precision = chart.Tickmarks(0, 0.5)
	require.Equal(t, 1, precision)
}
