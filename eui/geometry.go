package eui

import (
	"math"
	"sync/atomic"
)

// Point is a position or size in screen pixels.
type Point struct {
	X, Y float32
}

// Vec4 carries one value per corner (X=top-left, Y=top-right,
// Z=bottom-right, W=bottom-left) for rounding, or one per side (X=top,
// Y=right, Z=bottom, W=left) for border thickness.
type Vec4 struct {
	X, Y, Z, W float32
}

// Splat returns a Vec4 with every component set to v.
func Splat(v float32) Vec4 { return Vec4{v, v, v, v} }

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Max returns the largest component.
func (v Vec4) Max() float32 {
	return float32(math.Max(math.Max(float64(v.X), float64(v.Y)), math.Max(float64(v.Z), float64(v.W))))
}

// NodeSize is a geometry token whose pixel value depends on UI scale, the
// parent extent and the font size. Abs is in unscaled pixels, Prc is a
// percentage of the parent extent and Em is a multiple of the font size.
type NodeSize struct {
	Abs Vec4 `json:",omitempty" yaml:"abs,omitempty"`
	Prc Vec4 `json:",omitempty" yaml:"prc,omitempty"`
	Em  Vec4 `json:",omitempty" yaml:"em,omitempty"`
}

// Abs builds a NodeSize of absolute pixels only.
func Abs(v Vec4) NodeSize { return NodeSize{Abs: v} }

// Uniform builds a NodeSize with the same absolute value on every component.
func Uniform(px float32) NodeSize { return NodeSize{Abs: Splat(px)} }

// Evaluate converts the token to screen pixels. parent is the parent extent
// in screen pixels; em is the unscaled font size.
func (n NodeSize) Evaluate(parent, em float32) Vec4 {
	s := UIScale()
	return n.Abs.Scale(s).
		Add(n.Prc.Scale(parent / 100)).
		Add(n.Em.Scale(em * s))
}

var uiScaleBits atomic.Uint32

func init() {
	uiScaleBits.Store(math.Float32bits(1))
}

// SetUIScale sets the global UI scale. Values are clamped to a sane,
// supported range so very small or large values don't break layout.
func SetUIScale(scale float32) {
	if scale < 0.5 {
		scale = 0.5
	} else if scale > 4.0 {
		scale = 4.0
	}
	uiScaleBits.Store(math.Float32bits(scale))
}

func UIScale() float32 { return math.Float32frombits(uiScaleBits.Load()) }
