package eui

import "math"

// ColorSet is a ramp of shades of one color, sorted lightest to darkest.
// An empty set is valid and renders as White.
type ColorSet struct {
	Shades []Color
}

// NewColorSet builds a ramp from an explicit list of shades. The slice is
// copied so later edits to shades do not leak into the set.
func NewColorSet(shades ...Color) ColorSet {
	if len(shades) == 0 {
		return ColorSet{}
	}
	return ColorSet{Shades: append([]Color(nil), shades...)}
}

// SingleShade builds a one-shade ramp; every percentile resolves to c.
func SingleShade(c Color) ColorSet {
	return ColorSet{Shades: []Color{c}}
}

func (s ColorSet) Len() int { return len(s.Shades) }

// Val maps a design-scale percentile (0..1000) linearly onto however many
// shades the set holds, so sparse and dense ramps are interchangeable.
// Out-of-range percentiles pin to the first or last shade; NaN pins to the
// first.
func (s ColorSet) Val(percentile float32) Color {
	n := len(s.Shades)
	if n == 0 {
		return White
	}
	x := float64(n-1) * (float64(percentile) / 1000)
	if math.IsNaN(x) {
		x = 0
	}
	return s.Shades[int(clamp(x, 0, float64(n-1)))]
}

// Index returns the shade at position i. Positions at or past the last shade
// return White, matching the lookup existing palettes were tuned against;
// use Last for the darkest shade.
func (s ColorSet) Index(i int) Color {
	if i < 0 || i >= len(s.Shades)-1 {
		return White
	}
	return s.Shades[i]
}

// Last returns the darkest shade, or White for an empty set.
func (s ColorSet) Last() Color {
	if len(s.Shades) == 0 {
		return White
	}
	return s.Shades[len(s.Shades)-1]
}

func (s ColorSet) Equal(o ColorSet) bool {
	if len(s.Shades) != len(o.Shades) {
		return false
	}
	for i := range s.Shades {
		if s.Shades[i] != o.Shades[i] {
			return false
		}
	}
	return true
}

func (s ColorSet) clone() ColorSet {
	return NewColorSet(s.Shades...)
}
