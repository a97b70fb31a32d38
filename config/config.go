// Package config reads pane settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	chart "github.com/kofi-q/chart-go"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration value that cannot be applied.
var ErrInvalid = errors.New("invalid config")

// Rect is the pane area in pixels.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Axis configures one axis. Nil Min or Max leaves that side automatic.
type Axis struct {
	Title string   `yaml:"title"`
	Type  string   `yaml:"type"`
	Min   *float64 `yaml:"min"`
	Max   *float64 `yaml:"max"`
}

// Bars configures bar layout. A zero ClusterScaleWidth is computed from the
// data.
type Bars struct {
	Type              string  `yaml:"type"`
	Base              string  `yaml:"base"`
	MinBarGap         float64 `yaml:"min_bar_gap"`
	MinClusterGap     float64 `yaml:"min_cluster_gap"`
	ClusterScaleWidth float64 `yaml:"cluster_scale_width"`
}

// Config is the YAML document describing a pane.
type Config struct {
	Title         string  `yaml:"title"`
	Rect          Rect    `yaml:"rect"`
	FontsScaled   bool    `yaml:"fonts_scaled"`
	BaseDimension float64 `yaml:"base_dimension"`
	IgnoreInitial bool    `yaml:"ignore_initial"`
	BoundedRanges bool    `yaml:"bounded_ranges"`
	Bars          Bars    `yaml:"bars"`
	XAxis         Axis    `yaml:"x_axis"`
	YAxis         Axis    `yaml:"y_axis"`
}

// Default returns the settings of a fresh chart.Pane on a 640x480 area.
func Default() Config {
	return Config{
		Rect:          Rect{Width: 640, Height: 480},
		FontsScaled:   true,
		BaseDimension: chart.DefaultBaseDimension,
		Bars: Bars{
			Type:          chart.BarCluster.String(),
			Base:          chart.BarBaseX.String(),
			MinBarGap:     chart.DefaultMinBarGap,
			MinClusterGap: chart.DefaultMinClusterGap,
		},
		XAxis: Axis{Title: "X Axis", Type: chart.ScaleLinear.String()},
		YAxis: Axis{Title: "Y Axis", Type: chart.ScaleLinear.String()},
	}
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks names and numeric ranges.
func (c Config) Validate() error {
	if _, ok := chart.ParseBarType(c.Bars.Type); !ok {
		return fmt.Errorf("%w: bar type %q", ErrInvalid, c.Bars.Type)
	}
	if _, ok := chart.ParseBarBase(c.Bars.Base); !ok {
		return fmt.Errorf("%w: bar base %q", ErrInvalid, c.Bars.Base)
	}
	if c.Bars.MinBarGap < 0 || c.Bars.MinClusterGap < 0 || c.Bars.ClusterScaleWidth < 0 {
		return fmt.Errorf("%w: bar gaps and cluster width must not be negative", ErrInvalid)
	}
	if c.Rect.Width < 0 || c.Rect.Height < 0 {
		return fmt.Errorf("%w: negative pane size", ErrInvalid)
	}
	for name, a := range map[string]Axis{"x_axis": c.XAxis, "y_axis": c.YAxis} {
		st, ok := chart.ParseScaleType(a.Type)
		if !ok {
			return fmt.Errorf("%w: %s type %q", ErrInvalid, name, a.Type)
		}
		if st == chart.ScaleLog {
			if a.Min != nil && *a.Min <= 0 {
				return fmt.Errorf("%w: %s log min %g must be positive", ErrInvalid, name, *a.Min)
			}
			if a.Max != nil && *a.Max <= 0 {
				return fmt.Errorf("%w: %s log max %g must be positive", ErrInvalid, name, *a.Max)
			}
		}
		if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
			return fmt.Errorf("%w: %s min %g above max %g", ErrInvalid, name, *a.Min, *a.Max)
		}
	}
	return nil
}

func applyAxis(dst *chart.Axis, src Axis) {
	dst.Title = src.Title
	dst.Scale.Type, _ = chart.ParseScaleType(src.Type)
	dst.Scale.MinAuto = src.Min == nil
	if src.Min != nil {
		dst.Scale.Min = *src.Min
	}
	dst.Scale.MaxAuto = src.Max == nil
	if src.Max != nil {
		dst.Scale.Max = *src.Max
	}
}

// Apply copies the settings onto p.
func (c Config) Apply(p *chart.Pane) error {
	if err := c.Validate(); err != nil {
		return err
	}

	p.Title = c.Title
	p.Rect = chart.RectType{X: c.Rect.X, Y: c.Rect.Y, Wd: c.Rect.Width, Ht: c.Rect.Height}
	p.IsFontsScaled = c.FontsScaled
	p.BaseDimension = c.BaseDimension
	p.IsIgnoreInitial = c.IgnoreInitial
	p.IsBoundedRanges = c.BoundedRanges

	bs := &p.BarSettings
	bs.Type, _ = chart.ParseBarType(c.Bars.Type)
	bs.Base, _ = chart.ParseBarBase(c.Bars.Base)
	bs.MinBarGap = c.Bars.MinBarGap
	bs.MinClusterGap = c.Bars.MinClusterGap
	bs.ClusterScaleWidthAuto = c.Bars.ClusterScaleWidth == 0
	if !bs.ClusterScaleWidthAuto {
		bs.ClusterScaleWidth = c.Bars.ClusterScaleWidth
	}

	applyAxis(p.XAxis, c.XAxis)
	if len(p.YAxes) > 0 {
		applyAxis(p.YAxes[0], c.YAxis)
	}
	return nil
}

// NewPane returns a pane configured by c.
func (c Config) NewPane() (*chart.Pane, error) {
	p := chart.NewPane(c.Title, chart.RectType{})
	if err := c.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}
