// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart

import "math"

// ClusterConfig describes the geometry of one bar cluster.
type ClusterConfig struct {
	// BarGap is the gap between bars of a cluster, as a fraction of the
	// bar width.
	BarGap float64
	// ClusterGap is the gap between clusters, as a fraction of the bar
	// width.
	ClusterGap float64
	// NumBars is the number of bar slots in the cluster.
	NumBars int
	// ClusterWidth is the distance between clusters in pixels.
	ClusterWidth float64
}

// BarWidth returns the width in pixels of one bar such that NumBars bars,
// their gaps and one cluster gap fill ClusterWidth:
//
//	ClusterWidth = bar * (NumBars*(1+BarGap) - BarGap + ClusterGap)
//
// A non-positive denominator is replaced by 1 and a non-positive width by 1.
func BarWidth(cfg ClusterConfig) float64 {
	denom := float64(cfg.NumBars)*(1+cfg.BarGap) - cfg.BarGap + cfg.ClusterGap
	if denom <= 0 {
		denom = 1
	}
	return atLeastOne(cfg.ClusterWidth / denom)
}

func atLeastOne(width float64) float64 {
	if !(width > 0) {
		return 1
	}
	return width
}

// HiLowStyle configures the bars of a KindHiLowBar curve.
type HiLowStyle struct {
	// Size is the bar width in points, used unless IsAutoSize is set.
	Size float64
	// IsAutoSize sizes the bar from the base axis cluster width.
	IsAutoSize bool
	// UserScale is the cluster step, in data units, used with IsAutoSize.
	UserScale float64
}

// Width returns the bar width in whole pixels.
func (h HiLowStyle) Width(pane *Pane, base *Axis, scaleFactor float64) float64 {
	var width float64
	if h.IsAutoSize && base != nil {
		width = base.Scale.ClusterWidth(h.UserScale) /
			(1 + pane.BarSettings.MinClusterGap)
	} else {
		width = h.Size * scaleFactor
	}
	return math.Floor(width + 0.5)
}
