// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
)

// ScaleType selects how an axis maps data values to positions.
type ScaleType uint8

const (
	// ScaleLinear is an ordinary linear scale.
	ScaleLinear ScaleType = iota
	// ScaleLog is a base 10 logarithmic scale. Non-positive values cannot
	// be shown on it.
	ScaleLog
	// ScaleOrdinal positions points by their 1-based index.
	ScaleOrdinal
	// ScaleText is an ordinal scale labelled with text.
	ScaleText
	// ScaleLinearAsOrdinal positions points by index but labels them with
	// their values.
	ScaleLinearAsOrdinal
)

var scaleTypeNames = [...]string{
	ScaleLinear:          "linear",
	ScaleLog:             "log",
	ScaleOrdinal:         "ordinal",
	ScaleText:            "text",
	ScaleLinearAsOrdinal: "linearasordinal",
}

func (t ScaleType) String() string {
	if int(t) < len(scaleTypeNames) {
		return scaleTypeNames[t]
	}
	return "unknown"
}

// ParseScaleType returns the scale type named by s.
func ParseScaleType(s string) (ScaleType, bool) {
	for i, name := range scaleTypeNames {
		if name == s {
			return ScaleType(i), true
		}
	}
	return ScaleLinear, false
}

// AxisBounds limits range scanning along one axis. An unset side is
// unbounded.
type AxisBounds struct {
	Lower, Upper       float64
	HasLower, HasUpper bool
}

// Unbounded is the zero AxisBounds; it admits every value.
var Unbounded = AxisBounds{}

// Bounds returns AxisBounds set on both sides.
func Bounds(lower, upper float64) AxisBounds {
	return AxisBounds{Lower: lower, Upper: upper, HasLower: true, HasUpper: true}
}

// Contains reports whether v lies within b.
func (b AxisBounds) Contains(v float64) bool {
	if b.HasLower && v < b.Lower {
		return false
	}
	if b.HasUpper && v > b.Upper {
		return false
	}
	return true
}

// Scale holds the data range shown on an axis. Min and Max are picked by
// Pane.AxisChange when MinAuto or MaxAuto is set.
type Scale struct {
	Type     ScaleType
	Min, Max float64
	MinAuto  bool
	MaxAuto  bool

	// set by Pane.AxisChange
	minPix, maxPix float64
}

// IsLog reports whether the scale is logarithmic.
func (s *Scale) IsLog() bool {
	return s.Type == ScaleLog
}

// IsAnyOrdinal reports whether points are positioned by index.
func (s *Scale) IsAnyOrdinal() bool {
	switch s.Type {
	case ScaleOrdinal, ScaleText, ScaleLinearAsOrdinal:
		return true
	}
	return false
}

// RangeBounds returns the bounds a fixed (non-auto) side of the scale puts
// on range scanning.
func (s *Scale) RangeBounds() AxisBounds {
	var b AxisBounds
	if !s.MinAuto {
		b.Lower, b.HasLower = s.Min, true
	}
	if !s.MaxAuto {
		b.Upper, b.HasUpper = s.Max, true
	}
	return b
}

func (s *Scale) linearize(v float64) float64 {
	if s.IsLog() {
		if v <= 0 {
			return math.Inf(-1)
		}
		return math.Log10(v)
	}
	return v
}

// Transform maps the data value v to a pixel position along the axis. A
// degenerate scale, or a log scale with a non-positive side, maps every
// value to the start of the axis.
func (s *Scale) Transform(v float64) float64 {
	lo, hi := s.linearize(s.Min), s.linearize(s.Max)
	if hi == lo || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return s.minPix
	}
	return s.minPix + (s.linearize(v)-lo)/(hi-lo)*(s.maxPix-s.minPix)
}

// ClusterWidth returns the width in pixels of one cluster step of
// scaleWidth data units. Ordinal scales always step by one.
func (s *Scale) ClusterWidth(scaleWidth float64) float64 {
	if s.IsAnyOrdinal() {
		scaleWidth = 1
	}
	return math.Abs(s.Transform(s.Min+scaleWidth) - s.Transform(s.Min))
}

// PickScale sets the automatic sides of the scale so that [min, max] fits
// on nice tick boundaries.
func (s *Scale) PickScale(min, max float64) {
	switch {
	case s.IsAnyOrdinal():
		min, max = 0, math.Ceil(max)+1
	case s.IsLog():
		if min <= 0 {
			min = 1
		}
		if max < min {
			max = min
		}
		min, max = decadeBounds(min, max)
	default:
		if max-min < 1e-100 {
			if min == 0 {
				min, max = -1, 1
			} else {
				d := math.Abs(min) * 0.2
				min, max = min-d, max+d
			}
		}
		min, max = niceBounds(min, max)
	}
	if s.MinAuto {
		s.Min = min
	}
	if s.MaxAuto {
		s.Max = max
	}
}

// Ticks returns the major tickmarks of the current scale and their label
// precision. A log scale with a non-positive or infinite side has none.
func (s *Scale) Ticks() ([]float64, int) {
	if s.IsLog() {
		if !(s.Min > 0) || !(s.Max >= s.Min) || math.IsInf(s.Max, 0) {
			return nil, 0
		}
		var list []float64
		for v := s.Min; v <= s.Max*1.0000001; v *= 10 {
			list = append(list, v)
		}
		return list, 0
	}
	return Tickmarks(s.Min, s.Max)
}

// Axis is one axis of a pane.
type Axis struct {
	Title     string
	IsVisible bool
	Scale     Scale

	vertical bool
}

func newAxis(title string, vertical bool) *Axis {
	return &Axis{
		Title:     title,
		IsVisible: true,
		Scale:     Scale{MinAuto: true, MaxAuto: true, Max: 1},
		vertical:  vertical,
	}
}

// NewXAxis returns a horizontal, auto-scaled axis.
func NewXAxis(title string) *Axis {
	return newAxis(title, false)
}

// NewYAxis returns a vertical, auto-scaled axis.
func NewYAxis(title string) *Axis {
	return newAxis(title, true)
}

// IsVertical reports whether the axis runs vertically.
func (a *Axis) IsVertical() bool {
	return a.vertical
}

// SetRange fixes both ends of the scale.
func (a *Axis) SetRange(min, max float64) {
	a.Scale.Min, a.Scale.Max = min, max
	a.Scale.MinAuto, a.Scale.MaxAuto = false, false
}

// setupPixels spans the axis across rect. Vertical axes grow upwards.
func (a *Axis) setupPixels(rect RectType) {
	if a.vertical {
		a.Scale.minPix, a.Scale.maxPix = rect.Bottom(), rect.Top()
	} else {
		a.Scale.minPix, a.Scale.maxPix = rect.Left(), rect.Right()
	}
}
