package chart

import (
	"image/color"
)

// SymbolType is the marker drawn at each point of a line curve.
type SymbolType uint8

const (
	SymbolNone SymbolType = iota
	SymbolCircle
	SymbolDiamond
	SymbolPlus
	SymbolSquare
	SymbolStar
	SymbolTriangle
	SymbolTriangleDown
	SymbolXCross
	SymbolHDash
	SymbolVDash
)

// SymbolStyle configures point markers. For error bars Size is also the
// width of the bar caps.
type SymbolStyle struct {
	Type SymbolType
	Size float64
}

var rotatorColors = []color.RGBA{
	{0xff, 0x00, 0x00, 0xff}, // red
	{0x00, 0x00, 0xff, 0xff}, // blue
	{0x00, 0x80, 0x00, 0xff}, // green
	{0x80, 0x00, 0x80, 0xff}, // purple
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0xff, 0xc0, 0xcb, 0xff}, // pink
	{0xad, 0xd8, 0xe6, 0xff}, // light blue
	{0xdb, 0x70, 0x93, 0xff}, // pale violet red
	{0x2e, 0x8b, 0x57, 0xff}, // sea green
	{0xff, 0xff, 0x00, 0xff}, // yellow
}

var rotatorSymbols = []SymbolType{
	SymbolCircle,
	SymbolDiamond,
	SymbolPlus,
	SymbolSquare,
	SymbolStar,
	SymbolTriangle,
	SymbolTriangleDown,
	SymbolXCross,
	SymbolHDash,
	SymbolVDash,
}

// ColorSymbolRotator hands out colors and symbols in a fixed cycle. Each
// caller owns its rotator; there is no shared instance.
type ColorSymbolRotator struct {
	colorIx  int
	symbolIx int
}

// NextColor returns the next color of the cycle.
func (r *ColorSymbolRotator) NextColor() color.RGBA {
	c := rotatorColors[r.colorIx%len(rotatorColors)]
	r.colorIx++
	return c
}

// NextSymbol returns the next symbol of the cycle.
func (r *ColorSymbolRotator) NextSymbol() SymbolType {
	s := rotatorSymbols[r.symbolIx%len(rotatorSymbols)]
	r.symbolIx++
	return s
}

// Reset restarts both cycles.
func (r *ColorSymbolRotator) Reset() {
	r.colorIx, r.symbolIx = 0, 0
}
