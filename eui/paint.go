package eui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoxStyle is a theme's geometry and accent tokens evaluated for one
// element, ready to paint.
type BoxStyle struct {
	Radii     Vec4
	Border    Vec4
	Highlight Color
	Stroke    Color
}

// ThemeBox evaluates t's base rounding and border thickness for an element
// with the given parent extent and font size, and resolves its accent
// selectors.
func ThemeBox(t *Theme, parent, em float32) BoxStyle {
	if t == nil {
		t = CurrentTheme()
	}
	return BoxStyle{
		Radii:     t.RoundingBase.Evaluate(parent, em),
		Border:    t.BorderThickness.Evaluate(parent, em),
		Highlight: t.HighlightColor.Resolve(t),
		Stroke:    t.BorderColor.Resolve(t),
	}
}

// ContainerBox is ThemeBox using the container rounding.
func ContainerBox(t *Theme, parent, em float32) BoxStyle {
	if t == nil {
		t = CurrentTheme()
	}
	b := ThemeBox(t, parent, em)
	b.Radii = t.RoundingContainer.Evaluate(parent, em)
	return b
}

func roundPx(v float32) float32 { return float32(math.Round(float64(v))) }

// clampRadii keeps each corner within half the box so neighbouring curves
// never overlap.
func clampRadii(r Vec4, w, h float32) Vec4 {
	limit := w / 2
	if h/2 < limit {
		limit = h / 2
	}
	fix := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > limit {
			return roundPx(limit)
		}
		return roundPx(v)
	}
	return Vec4{fix(r.X), fix(r.Y), fix(r.Z), fix(r.W)}
}

func roundRectPath(x, y, w, h float32, r Vec4) *vector.Path {
	var path vector.Path
	r = clampRadii(r, w, h)
	path.MoveTo(x+r.X, y)
	path.LineTo(x+w-r.Y, y)
	path.QuadTo(x+w, y, x+w, y+r.Y)
	path.LineTo(x+w, y+h-r.Z)
	path.QuadTo(x+w, y+h, x+w-r.Z, y+h)
	path.LineTo(x+r.W, y+h)
	path.QuadTo(x, y+h, x, y+h-r.W)
	path.LineTo(x, y+r.X)
	path.QuadTo(x, y, x+r.X, y)
	path.Close()
	return &path
}

// DrawRoundRect fills a rectangle with per-corner rounding.
func DrawRoundRect(dst *ebiten.Image, pos, size Point, radii Vec4, col Color) {
	x, y := roundPx(pos.X), roundPx(pos.Y)
	w, h := roundPx(pos.X+size.X)-x, roundPx(pos.Y+size.Y)-y
	if w <= 0 || h <= 0 {
		return
	}
	if radii == (Vec4{}) {
		vector.DrawFilledRect(dst, x, y, w, h, col.ToRGBA(), true)
		return
	}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(col.ToRGBA())
	vector.FillPath(dst, roundRectPath(x, y, w, h, radii), nil, drawOp)
}

// DrawBorderedRect paints the border as the outer shape and the fill as an
// inner shape inset by each side's thickness.
func DrawBorderedRect(dst *ebiten.Image, pos, size Point, radii, border Vec4, fill, stroke Color) {
	if border == (Vec4{}) {
		DrawRoundRect(dst, pos, size, radii, fill)
		return
	}
	DrawRoundRect(dst, pos, size, radii, stroke)
	inner := Point{X: pos.X + border.W, Y: pos.Y + border.X}
	innerSize := Point{X: size.X - border.W - border.Y, Y: size.Y - border.X - border.Z}
	shrink := func(r, a, b float32) float32 {
		m := a
		if b > m {
			m = b
		}
		if r -= m; r < 0 {
			return 0
		}
		return r
	}
	innerRadii := Vec4{
		X: shrink(radii.X, border.X, border.W),
		Y: shrink(radii.Y, border.X, border.Y),
		Z: shrink(radii.Z, border.Z, border.Y),
		W: shrink(radii.W, border.Z, border.W),
	}
	DrawRoundRect(dst, inner, innerSize, innerRadii, fill)
}
