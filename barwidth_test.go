// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chart_test

import (
	"testing"

	chart "github.com/kofi-q/chart-go"
	"github.com/stretchr/testify/require"
)

const floatDelta = 1e-9

func TestBarWidth(t *testing.T) {
	tests := []struct {
		name string
		cfg  chart.ClusterConfig
		want float64
	}{
		{
			name: "four bars",
			cfg:  chart.ClusterConfig{BarGap: 0.2, ClusterGap: 0.1, NumBars: 4, ClusterWidth: 100},
			want: 100 / 4.7,
		},
		{
			name: "single bar",
			cfg:  chart.ClusterConfig{BarGap: 0.2, ClusterGap: 1, NumBars: 1, ClusterWidth: 50},
			want: 25,
		},
		{
			name: "zero denominator",
			cfg:  chart.ClusterConfig{NumBars: 0, ClusterWidth: 100},
			want: 100,
		},
		{
			name: "negative denominator",
			cfg:  chart.ClusterConfig{BarGap: 3, NumBars: 0, ClusterWidth: 40},
			want: 40,
		},
		{
			name: "zero cluster width",
			cfg:  chart.ClusterConfig{BarGap: 0.2, ClusterGap: 1, NumBars: 3},
			want: 1,
		},
		{
			name: "negative cluster width",
			cfg:  chart.ClusterConfig{NumBars: 2, ClusterWidth: -10},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, chart.BarWidth(tt.cfg), floatDelta)
		})
	}
}

func TestBarWidthExample(t *testing.T) {
	w := chart.BarWidth(chart.ClusterConfig{
		BarGap:       0.2,
		ClusterGap:   0.1,
		NumBars:      4,
		ClusterWidth: 100,
	})
	require.InDelta(t, 21.28, w, 0.005)
}
