// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import "math"

// Range is the bounding box of the points that qualified during a range
// scan.
type Range struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Union returns the smallest range covering r and o.
func (r Range) Union(o Range) Range {
	return Range{
		XMin: min(r.XMin, o.XMin),
		XMax: max(r.XMax, o.XMax),
		YMin: min(r.YMin, o.YMin),
		YMax: max(r.YMax, o.YMax),
	}
}

// RangeOptions configures ComputeRange.
type RangeOptions struct {
	XBounds, YBounds AxisBounds

	// IncludeZ folds Z into the Y range when XIndependent is set, and into
	// the X range otherwise.
	IncludeZ     bool
	XIndependent bool

	// Points with a non-positive coordinate on a log axis are skipped.
	XLog, YLog bool

	// On ordinal axes the 1-based point index replaces the coordinate.
	XOrdinal, YOrdinal, ZOrdinal bool

	// IgnoreInitial skips leading points whose Y is exactly zero. Skipping
	// stops for good at the first Y that is neither zero nor Missing.
	IgnoreInitial bool
}

// ComputeRange scans pts in order and returns the bounding box of the
// points that qualify under opts. Points with a Missing, NaN or infinite X
// or Y never qualify, and such a Z never extends the range. The boolean
// result is false when no point qualified, in which case the Range is
// meaningless.
func ComputeRange(pts PointList, opts RangeOptions) (Range, bool) {
	var (
		r      Range
		found  bool
		ignore = opts.IgnoreInitial
	)

	zBounds := opts.XBounds
	if opts.XIndependent {
		zBounds = opts.YBounds
	}

	for i := range pts.Len() {
		p := pts.At(i)
		x, y, z := p.X, p.Y, p.Z
		if opts.XOrdinal {
			x = float64(i + 1)
		}
		if opts.YOrdinal {
			y = float64(i + 1)
		}
		if opts.ZOrdinal {
			z = float64(i + 1)
		}

		outOfBounds := !opts.XBounds.Contains(x) ||
			!opts.YBounds.Contains(y) ||
			(opts.IncludeZ && !zBounds.Contains(z)) ||
			(opts.XLog && x <= 0) ||
			(opts.YLog && y <= 0)

		if ignore && y != 0 && y != Missing {
			ignore = false
		}

		if ignore || outOfBounds || (Point{X: x, Y: y}).IsInvalid() {
			continue
		}

		if !found {
			r = Range{XMin: x, XMax: x, YMin: y, YMax: y}
			found = true
		} else {
			r.XMin, r.XMax = min(r.XMin, x), max(r.XMax, x)
			r.YMin, r.YMax = min(r.YMin, y), max(r.YMax, y)
		}

		if !opts.IncludeZ || z == Missing || !isFinite(z) {
			continue
		}
		if opts.XIndependent {
			r.YMin, r.YMax = min(r.YMin, z), max(r.YMax, z)
		} else {
			r.XMin, r.XMax = min(r.XMin, z), max(r.XMax, z)
		}
	}

	return r, found
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
