// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tiendc/go-deepcopy"
)

// CurveStyle holds the configuration of a curve apart from its points.
// PointColors and Attrs are references; use Curve.Clone for an independent
// copy.
type CurveStyle struct {
	Label string
	Kind  CurveKind
	Color color.RGBA
	// PointColors overrides Color for the point at the same index. Points
	// past its end use Color.
	PointColors []color.RGBA
	// Attrs holds caller-defined key/value annotations.
	Attrs map[string]string

	IsVisible bool
	Tag       string

	// IsX2Axis plots the curve against the pane's X2 axis.
	IsX2Axis bool
	// IsY2Axis plots the curve against one of the pane's Y2 axes.
	IsY2Axis bool
	// YAxisIndex picks the Y (or Y2) axis. An index past the end of the
	// pane's list falls back to the first axis.
	YAxisIndex int
	// IsOverrideOrdinal plots actual X values on an ordinal X axis.
	IsOverrideOrdinal bool

	// Symbol is used by KindLine markers and KindErrorBar caps.
	Symbol SymbolStyle
	// HiLow is used by KindHiLowBar.
	HiLow HiLowStyle
	// PieDisplacement is the outward offset of a KindPie slice, as a
	// fraction of the radius.
	PieDisplacement float64
}

// Curve is one plotted series of points.
type Curve struct {
	CurveStyle

	points PointList
}

// NewCurve returns a visible curve of the given kind over pts. A nil pts
// is replaced by an empty PointPairList.
func NewCurve(label string, kind CurveKind, pts PointList) *Curve {
	if pts == nil {
		pts = NewPointPairList()
	}
	c := &Curve{
		CurveStyle: CurveStyle{
			Label:     label,
			Kind:      kind,
			IsVisible: true,
		},
		points: pts,
	}
	switch kind {
	case KindErrorBar:
		c.Symbol.Size = 7
	case KindHiLowBar:
		c.HiLow = HiLowStyle{Size: 7, UserScale: 1}
	case KindLine:
		c.Symbol = SymbolStyle{Type: SymbolCircle, Size: 7}
	}
	return c
}

// Points returns the curve's point list.
func (c *Curve) Points() PointList {
	return c.points
}

// SetPoints replaces the curve's point list. A nil pts is replaced by an
// empty PointPairList.
func (c *Curve) SetPoints(pts PointList) {
	if pts == nil {
		pts = NewPointPairList()
	}
	c.points = pts
}

// NPts returns the number of points in the curve.
func (c *Curve) NPts() int {
	if c.points == nil {
		return 0
	}
	return c.points.Len()
}

// IsEmpty reports whether the curve holds no points.
func (c *Curve) IsEmpty() bool {
	return c.NPts() == 0
}

func (c *Curve) editable() (EditablePointList, error) {
	l, ok := c.points.(EditablePointList)
	if !ok {
		return nil, fmt.Errorf("chart: points of curve %q (%T) are read-only: %w",
			c.Label, c.points, errors.ErrUnsupported)
	}
	return l, nil
}

// AddPoint appends p. It fails if the point list is not editable.
func (c *Curve) AddPoint(p Point) error {
	l, err := c.editable()
	if err != nil {
		return err
	}
	l.Add(p)
	return nil
}

// RemovePoint removes the point at index i. It fails if the point list is
// not editable or i is out of range.
func (c *Curve) RemovePoint(i int) error {
	l, err := c.editable()
	if err != nil {
		return err
	}
	return l.RemoveAt(i)
}

// Clear removes all points. It fails if the point list is not editable.
func (c *Curve) Clear() error {
	l, err := c.editable()
	if err != nil {
		return err
	}
	l.Clear()
	return nil
}

// Clone returns a deep copy of the curve, including PointColors and Attrs.
// Editable point lists are copied; custom read-only lists are shared.
func (c *Curve) Clone() (*Curve, error) {
	out := &Curve{}
	if err := deepcopy.Copy(&out.CurveStyle, &c.CurveStyle); err != nil {
		return nil, fmt.Errorf("chart: clone curve %q: %w", c.Label, err)
	}
	if c.points != nil {
		out.points = clonePoints(c.points)
	}
	return out, nil
}

// ColorAt returns the fill color of the point at index i.
func (c *Curve) ColorAt(i int) color.RGBA {
	if i >= 0 && i < len(c.PointColors) {
		return c.PointColors[i]
	}
	return c.Color
}

// IsBar reports whether the curve takes a slot in a bar cluster.
func (c *Curve) IsBar() bool {
	switch c.Kind {
	case KindBar, KindHiLowBar:
		return true
	case KindLine, KindErrorBar, KindPie:
		return false
	}
	return false
}

// IsLine reports whether the curve is a line curve.
func (c *Curve) IsLine() bool {
	return c.Kind == KindLine
}

// IsPie reports whether the curve is a pie slice.
func (c *Curve) IsPie() bool {
	return c.Kind == KindPie
}

// IsZIncluded reports whether Z values extend the curve's range.
func (c *Curve) IsZIncluded(pane *Pane) bool {
	switch c.Kind {
	case KindErrorBar, KindHiLowBar:
		return true
	case KindLine, KindBar, KindPie:
		return false
	}
	return false
}

// IsXIndependent reports whether X is the independent variable, that is
// whether values run along the Y direction.
func (c *Curve) IsXIndependent(pane *Pane) bool {
	base := pane.BarSettings.Base
	switch c.Kind {
	case KindLine, KindPie:
		return true
	case KindBar, KindHiLowBar:
		return base == BarBaseX || base == BarBaseX2
	case KindErrorBar:
		return base == BarBaseX
	}
	return true
}

// XAxis returns the X axis the curve is plotted against.
func (c *Curve) XAxis(pane *Pane) *Axis {
	if c.IsX2Axis {
		return pane.X2Axis
	}
	return pane.XAxis
}

// YAxis returns the Y axis the curve is plotted against, or nil if the
// pane has none.
func (c *Curve) YAxis(pane *Pane) *Axis {
	list := pane.YAxes
	if c.IsY2Axis {
		list = pane.Y2Axes
	}
	if len(list) == 0 {
		return nil
	}
	return list[c.YAxisIndexIn(pane)]
}

// YAxisIndexIn returns the index of the curve's Y axis within the pane's
// Y (or Y2) axis list after the out-of-range fallback.
func (c *Curve) YAxisIndexIn(pane *Pane) int {
	n := len(pane.YAxes)
	if c.IsY2Axis {
		n = len(pane.Y2Axes)
	}
	if c.YAxisIndex >= 0 && c.YAxisIndex < n {
		return c.YAxisIndex
	}
	return 0
}

func (c *Curve) barBase(pane *Pane) BarBase {
	switch c.Kind {
	case KindBar, KindErrorBar, KindHiLowBar:
		return pane.BarSettings.Base
	case KindLine, KindPie:
	}
	if c.IsX2Axis {
		return BarBaseX2
	}
	return BarBaseX
}

// BaseAxis returns the axis the curve's bars grow from. For curves that
// are not bars it is the curve's X axis.
func (c *Curve) BaseAxis(pane *Pane) *Axis {
	switch c.barBase(pane) {
	case BarBaseX:
		return pane.XAxis
	case BarBaseX2:
		return pane.X2Axis
	case BarBaseY:
		return pane.firstY()
	default:
		return pane.firstY2()
	}
}

// ValueAxis returns the axis the curve's values are measured against.
func (c *Curve) ValueAxis(pane *Pane) *Axis {
	switch c.barBase(pane) {
	case BarBaseX, BarBaseX2:
		return c.YAxis(pane)
	default:
		return c.XAxis(pane)
	}
}

// MakeUnique gives the curve the next color of r. Line curves also take
// the next symbol.
func (c *Curve) MakeUnique(r *ColorSymbolRotator) {
	c.Color = r.NextColor()
	if c.Kind == KindLine {
		c.Symbol.Type = r.NextSymbol()
	}
}

// RangeOptions returns the range scan options implied by the pane's axes
// and flags. ok is false when the curve has no axes in the pane.
func (c *Curve) RangeOptions(pane *Pane) (opts RangeOptions, ok bool) {
	xAxis, yAxis := c.XAxis(pane), c.YAxis(pane)
	if xAxis == nil || yAxis == nil {
		return opts, false
	}

	xIndependent := c.IsXIndependent(pane)
	zAxis := xAxis
	if xIndependent {
		zAxis = yAxis
	}

	opts = RangeOptions{
		IncludeZ:      c.IsZIncluded(pane),
		XIndependent:  xIndependent,
		XLog:          xAxis.Scale.IsLog(),
		YLog:          yAxis.Scale.IsLog(),
		XOrdinal:      xAxis.Scale.IsAnyOrdinal() && !c.IsOverrideOrdinal,
		YOrdinal:      yAxis.Scale.IsAnyOrdinal(),
		ZOrdinal:      zAxis.Scale.IsAnyOrdinal(),
		IgnoreInitial: pane.IsIgnoreInitial,
	}
	if pane.IsBoundedRanges {
		opts.XBounds = xAxis.Scale.RangeBounds()
		opts.YBounds = yAxis.Scale.RangeBounds()
	}
	return opts, true
}

// Range returns the bounding box of the curve's points for auto-scaling.
// found is false when no point qualifies or the curve has no axes.
func (c *Curve) Range(pane *Pane) (r Range, found bool) {
	if c.NPts() == 0 {
		return r, false
	}
	opts, ok := c.RangeOptions(pane)
	if !ok {
		return r, false
	}
	return ComputeRange(c.points, opts)
}

// BarWidth returns the width in pixels of one of the curve's bars. The
// result is never less than 1 for degenerate input.
func (c *Curve) BarWidth(pane *Pane) float64 {
	switch c.Kind {
	case KindErrorBar:
		return atLeastOne(c.Symbol.Size * pane.ScaleFactor())
	case KindHiLowBar:
		if pane.BarSettings.Type != BarClusterHiLow {
			return atLeastOne(c.HiLow.Width(pane, c.BaseAxis(pane), pane.ScaleFactor()))
		}
	case KindLine, KindBar, KindPie:
	}

	numBars := 1
	if pane.BarSettings.Type.IsClustered() {
		numBars = pane.NumClusterableBars()
	}
	return BarWidth(ClusterConfig{
		BarGap:       pane.BarSettings.MinBarGap,
		ClusterGap:   pane.BarSettings.MinClusterGap,
		NumBars:      numBars,
		ClusterWidth: pane.ClusterWidth(),
	})
}
