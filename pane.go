// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

const (
	// aspectLimit caps the aspect ratio used when deriving the scale
	// factor from the pane size.
	aspectLimit = 1.5
	// minScaleFactor is the smallest scale factor a pane reports.
	minScaleFactor = 0.1

	DefaultBaseDimension = 8.0
	DefaultMinBarGap     = 0.2
	DefaultMinClusterGap = 1.0
)

// BarSettings controls the layout of the bar curves of a pane.
type BarSettings struct {
	Type BarType
	Base BarBase

	// MinBarGap is the gap between bars of a cluster as a fraction of the
	// bar width.
	MinBarGap float64
	// MinClusterGap is the gap between clusters as a fraction of the bar
	// width.
	MinClusterGap float64

	// ClusterScaleWidth is the distance between clusters in data units of
	// the base axis. Ordinal axes always use 1.
	ClusterScaleWidth float64
	// ClusterScaleWidthAuto recomputes ClusterScaleWidth in AxisChange as
	// the smallest step between consecutive bar values.
	ClusterScaleWidthAuto bool
}

// Pane holds a set of curves and the axes they are plotted against. Range
// and width queries only read the pane and may run concurrently. Changes to
// its curves and AxisChange must be serialized against them.
type Pane struct {
	Title string
	// Rect is the area covered by the axes, in pixels.
	Rect RectType

	Curves []*Curve

	XAxis  *Axis
	X2Axis *Axis
	YAxes  []*Axis
	Y2Axes []*Axis

	BarSettings BarSettings

	// IsFontsScaled makes ScaleFactor follow the pane size. Otherwise the
	// scale factor is 1.
	IsFontsScaled bool
	// BaseDimension is the size, in inches, at which the scale factor is 1.
	BaseDimension float64

	// IsIgnoreInitial skips leading zero values when auto-scaling.
	IsIgnoreInitial bool
	// IsBoundedRanges limits auto-scaling to points inside the fixed sides
	// of the axes.
	IsBoundedRanges bool
}

// NewPane returns a pane with one X, X2, Y and Y2 axis. The secondary axes
// start hidden.
func NewPane(title string, rect RectType) *Pane {
	p := &Pane{
		Title:  title,
		Rect:   rect,
		XAxis:  NewXAxis("X Axis"),
		X2Axis: NewXAxis("X2 Axis"),
		YAxes:  []*Axis{NewYAxis("Y Axis")},
		Y2Axes: []*Axis{NewYAxis("Y2 Axis")},
		BarSettings: BarSettings{
			Type:                  BarCluster,
			Base:                  BarBaseX,
			MinBarGap:             DefaultMinBarGap,
			MinClusterGap:         DefaultMinClusterGap,
			ClusterScaleWidth:     1,
			ClusterScaleWidthAuto: true,
		},
		IsFontsScaled: true,
		BaseDimension: DefaultBaseDimension,
	}
	p.X2Axis.IsVisible = false
	p.Y2Axes[0].IsVisible = false
	return p
}

// AddCurve creates a curve, appends it to the pane and returns it.
func (p *Pane) AddCurve(label string, kind CurveKind, pts PointList) *Curve {
	c := NewCurve(label, kind, pts)
	p.Curves = append(p.Curves, c)
	return c
}

// AddYAxis appends a Y axis and returns its index.
func (p *Pane) AddYAxis(title string) int {
	p.YAxes = append(p.YAxes, NewYAxis(title))
	return len(p.YAxes) - 1
}

// AddY2Axis appends a Y2 axis and returns its index.
func (p *Pane) AddY2Axis(title string) int {
	p.Y2Axes = append(p.Y2Axes, NewYAxis(title))
	return len(p.Y2Axes) - 1
}

func (p *Pane) firstY() *Axis {
	if len(p.YAxes) == 0 {
		return nil
	}
	return p.YAxes[0]
}

func (p *Pane) firstY2() *Axis {
	if len(p.Y2Axes) == 0 {
		return nil
	}
	return p.Y2Axes[0]
}

// BarBaseAxis returns the axis named by BarSettings.Base.
func (p *Pane) BarBaseAxis() *Axis {
	switch p.BarSettings.Base {
	case BarBaseX:
		return p.XAxis
	case BarBaseX2:
		return p.X2Axis
	case BarBaseY:
		return p.firstY()
	default:
		return p.firstY2()
	}
}

// ScaleFactor returns the factor applied to sizes given in points. It grows
// with the pane, with the aspect ratio limited to 1.5, and never drops
// below 0.1.
func (p *Pane) ScaleFactor() float64 {
	if !p.IsFontsScaled || p.Rect.Ht <= 0 || p.BaseDimension <= 0 {
		return 1
	}

	length := p.Rect.Wd
	aspect := p.Rect.Wd / p.Rect.Ht
	if aspect > aspectLimit {
		length = p.Rect.Ht * aspectLimit
	}
	if aspect < 1/aspectLimit {
		length = p.Rect.Wd * aspectLimit
	}

	return math.Max(length/(p.BaseDimension*72), minScaleFactor)
}

// barSet returns the set of indices of curves that take a slot in a bar
// cluster. The pane itself is only read.
func (p *Pane) barSet() *bitset.BitSet {
	set := bitset.New(uint(len(p.Curves)))
	for i, c := range p.Curves {
		if c.IsBar() {
			set.Set(uint(i))
		}
	}
	return set
}

// NumClusterableBars returns the number of curves that take a slot in a
// bar cluster.
func (p *Pane) NumClusterableBars() int {
	return int(p.barSet().Count())
}

// BarCurves returns the indices of the pane's bar curves in order.
func (p *Pane) BarCurves() []int {
	set := p.barSet()
	out := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// ClusterWidth returns the distance between clusters in pixels along the
// bar base axis.
func (p *Pane) ClusterWidth() float64 {
	base := p.BarBaseAxis()
	if base == nil {
		return 0
	}
	return base.Scale.ClusterWidth(p.BarSettings.ClusterScaleWidth)
}

// calcClusterScaleWidth returns the smallest non-zero step between
// consecutive base values of any bar curve.
func (p *Pane) calcClusterScaleWidth() (float64, bool) {
	useY := p.BarSettings.Base == BarBaseY || p.BarSettings.Base == BarBaseY2
	step, found := math.MaxFloat64, false
	for _, i := range p.BarCurves() {
		pts := p.Curves[i].Points()
		if pts == nil {
			continue
		}
		for j := 1; j < pts.Len(); j++ {
			a, b := pts.At(j-1), pts.At(j)
			if a.IsMissing() || b.IsMissing() {
				continue
			}
			d := math.Abs(b.X - a.X)
			if useY {
				d = math.Abs(b.Y - a.Y)
			}
			if d > 0 && d < step {
				step, found = d, true
			}
		}
	}
	return step, found
}

type axisRange struct {
	min, max float64
	found    bool
}

func (r *axisRange) add(lo, hi float64) {
	if !r.found {
		r.min, r.max, r.found = lo, hi, true
		return
	}
	r.min, r.max = min(r.min, lo), max(r.max, hi)
}

func (p *Pane) axes() []*Axis {
	out := []*Axis{p.XAxis, p.X2Axis}
	out = append(out, p.YAxes...)
	out = append(out, p.Y2Axes...)
	return out
}

// AxisChange recomputes the automatic sides of every axis from the ranges
// of the visible curves and spans the axes across Rect.
func (p *Pane) AxisChange() {
	if p.BarSettings.ClusterScaleWidthAuto {
		if w, ok := p.calcClusterScaleWidth(); ok {
			p.BarSettings.ClusterScaleWidth = w
		}
	}

	ranges := make(map[*Axis]*axisRange)
	get := func(a *Axis) *axisRange {
		r, ok := ranges[a]
		if !ok {
			r = &axisRange{}
			ranges[a] = r
		}
		return r
	}

	for _, c := range p.Curves {
		if !c.IsVisible || c.IsPie() {
			continue
		}
		r, found := c.Range(p)
		if !found {
			continue
		}
		if c.Kind == KindBar {
			if c.IsXIndependent(p) {
				r.YMin, r.YMax = min(r.YMin, 0), max(r.YMax, 0)
			} else {
				r.XMin, r.XMax = min(r.XMin, 0), max(r.XMax, 0)
			}
		}
		get(c.XAxis(p)).add(r.XMin, r.XMax)
		get(c.YAxis(p)).add(r.YMin, r.YMax)
	}

	for _, a := range p.axes() {
		if a == nil {
			continue
		}
		r := get(a)
		switch {
		case r.found:
			a.Scale.PickScale(r.min, r.max)
		case a.Scale.IsLog():
			a.Scale.PickScale(1, 10)
		default:
			a.Scale.PickScale(0, 1)
		}
		a.setupPixels(p.Rect)
	}
}
