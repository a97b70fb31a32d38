// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"math"
)

// Missing is the value used to mark a coordinate that has no data. Points
// holding Missing in X or Y are skipped by range scanning.
const Missing = math.MaxFloat64

var (
	// ErrIndexRange is returned when a point index is outside of a list.
	ErrIndexRange = errors.New("chart: point index out of range")
)

// CurveKind identifies the kind of a Curve. The set is closed; behaviour
// that depends on the kind is selected by switching over it.
type CurveKind uint8

const (
	// KindLine is a line and/or symbol curve.
	KindLine CurveKind = iota
	// KindBar is a bar curve. Bars are clustered along the bar base axis.
	KindBar
	// KindErrorBar draws a vertical or horizontal bar between Y and Z.
	KindErrorBar
	// KindHiLowBar draws a filled bar between Y and Z.
	KindHiLowBar
	// KindPie is a pie slice. Its single point holds the slice value.
	KindPie
)

func (k CurveKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	case KindErrorBar:
		return "errorbar"
	case KindHiLowBar:
		return "hilowbar"
	case KindPie:
		return "pie"
	}
	return "unknown"
}

// ParseCurveKind returns the kind named by s, as produced by
// CurveKind.String.
func ParseCurveKind(s string) (CurveKind, bool) {
	for k := KindLine; k <= KindPie; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindLine, false
}

// BarType controls how bar curves sharing a pane are laid out.
type BarType uint8

const (
	// BarCluster places the bars of each curve side by side.
	BarCluster BarType = iota
	// BarClusterHiLow clusters hi-low bars side by side.
	BarClusterHiLow
	// BarStack stacks bars on top of each other.
	BarStack
	// BarOverlay draws bars on top of each other without stacking.
	BarOverlay
	// BarSortedOverlay overlays bars sorted by value.
	BarSortedOverlay
	// BarPercentStack stacks bars scaled to 100 percent.
	BarPercentStack
)

var barTypeNames = [...]string{
	BarCluster:       "cluster",
	BarClusterHiLow:  "clusterhilow",
	BarStack:         "stack",
	BarOverlay:       "overlay",
	BarSortedOverlay: "sortedoverlay",
	BarPercentStack:  "percentstack",
}

func (t BarType) String() string {
	if int(t) < len(barTypeNames) {
		return barTypeNames[t]
	}
	return "unknown"
}

// ParseBarType returns the bar type named by s.
func ParseBarType(s string) (BarType, bool) {
	for i, name := range barTypeNames {
		if name == s {
			return BarType(i), true
		}
	}
	return BarCluster, false
}

// IsClustered reports whether bars of this type sit side by side, so that
// the cluster holds one slot per bar curve.
func (t BarType) IsClustered() bool {
	return t == BarCluster || t == BarClusterHiLow
}

// BarBase names the axis bars grow from.
type BarBase uint8

const (
	BarBaseX BarBase = iota
	BarBaseX2
	BarBaseY
	BarBaseY2
)

var barBaseNames = [...]string{
	BarBaseX:  "x",
	BarBaseX2: "x2",
	BarBaseY:  "y",
	BarBaseY2: "y2",
}

func (b BarBase) String() string {
	if int(b) < len(barBaseNames) {
		return barBaseNames[b]
	}
	return "unknown"
}

// ParseBarBase returns the bar base named by s.
func ParseBarBase(s string) (BarBase, bool) {
	for i, name := range barBaseNames {
		if name == s {
			return BarBase(i), true
		}
	}
	return BarBaseX, false
}

// SizeType fields Wd and Ht specify the horizontal and vertical extents of a
// chart element such as a pane.
type SizeType struct {
	Wd, Ht float64
}

// RectType is an axis aligned rectangle in pixels. X and Y locate the top
// left corner.
type RectType struct {
	X, Y, Wd, Ht float64
}

// Left returns the left edge of r.
func (r RectType) Left() float64 { return r.X }

// Right returns the right edge of r.
func (r RectType) Right() float64 { return r.X + r.Wd }

// Top returns the top edge of r.
func (r RectType) Top() float64 { return r.Y }

// Bottom returns the bottom edge of r.
func (r RectType) Bottom() float64 { return r.Y + r.Ht }

// Size returns the extent of r.
func (r RectType) Size() SizeType {
	return SizeType{r.Wd, r.Ht}
}
