// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"slices"
)

// Point is a single data value. Z is used by error bars and hi-low bars as
// the lower end of the bar and is otherwise ignored.
type Point struct {
	X, Y, Z float64
}

// Pt returns a point with Z set to zero.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsMissing reports whether X or Y holds the Missing sentinel.
func (p Point) IsMissing() bool {
	return p.X == Missing || p.Y == Missing
}

// IsInvalid reports whether X or Y is missing, NaN or infinite.
func (p Point) IsInvalid() bool {
	return p.IsMissing() ||
		math.IsNaN(p.X) || math.IsInf(p.X, 0) ||
		math.IsNaN(p.Y) || math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s, %s)", fmtCoord(p.X), fmtCoord(p.Y), fmtCoord(p.Z))
}

func fmtCoord(v float64) string {
	if v == Missing {
		return "?"
	}
	return fmt.Sprintf("%g", v)
}

// PointList is an ordered, indexable sequence of points.
type PointList interface {
	Len() int
	At(i int) Point
}

// EditablePointList is a PointList that can be changed in place.
type EditablePointList interface {
	PointList
	Add(p Point)
	RemoveAt(i int) error
	Clear()
}

// PointPairList is the default, slice backed, editable point list.
type PointPairList struct {
	pts []Point
}

// NewPointPairList returns a list holding a copy of pts.
func NewPointPairList(pts ...Point) *PointPairList {
	return &PointPairList{pts: slices.Clone(pts)}
}

// NewPointPairListXY returns a list pairing xs and ys. Extra values of the
// longer slice are dropped.
func NewPointPairListXY(xs, ys []float64) *PointPairList {
	n := min(len(xs), len(ys))
	l := &PointPairList{pts: make([]Point, n)}
	for i := range n {
		l.pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return l
}

func (l *PointPairList) Len() int {
	return len(l.pts)
}

func (l *PointPairList) At(i int) Point {
	return l.pts[i]
}

func (l *PointPairList) Add(p Point) {
	l.pts = append(l.pts, p)
}

// AddXY appends the point (x, y).
func (l *PointPairList) AddXY(x, y float64) {
	l.Add(Point{X: x, Y: y})
}

func (l *PointPairList) RemoveAt(i int) error {
	if i < 0 || i >= len(l.pts) {
		return fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(l.pts))
	}
	l.pts = slices.Delete(l.pts, i, i+1)
	return nil
}

func (l *PointPairList) Clear() {
	l.pts = l.pts[:0]
}

// Clone returns an independent copy of l.
func (l *PointPairList) Clone() *PointPairList {
	return &PointPairList{pts: slices.Clone(l.pts)}
}

// Points returns the backing points. The slice must not be modified.
func (l *PointPairList) Points() []Point {
	return l.pts
}

// XYList is a read-only view over two parallel coordinate slices.
type XYList struct {
	X, Y []float64
}

func (l XYList) Len() int {
	return min(len(l.X), len(l.Y))
}

func (l XYList) At(i int) Point {
	return Point{X: l.X[i], Y: l.Y[i]}
}

// FuncList is a read-only list that evaluates F at each of Xs.
type FuncList struct {
	Xs []float64
	F  func(x float64) float64
}

func (l FuncList) Len() int {
	return len(l.Xs)
}

func (l FuncList) At(i int) Point {
	x := l.Xs[i]
	return Point{X: x, Y: l.F(x)}
}

// clonePoints returns a copy of pts when the list type supports it.
// Read-only views are shared.
func clonePoints(pts PointList) PointList {
	switch l := pts.(type) {
	case *PointPairList:
		return l.Clone()
	case XYList:
		return XYList{X: slices.Clone(l.X), Y: slices.Clone(l.Y)}
	case FuncList:
		return FuncList{Xs: slices.Clone(l.Xs), F: l.F}
	}
	return pts
}
