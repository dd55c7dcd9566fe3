package eui

import "testing"

func withScale(t *testing.T, s float32) {
	t.Helper()
	old := UIScale()
	SetUIScale(s)
	t.Cleanup(func() { SetUIScale(old) })
}

func TestNodeSizeEvaluate(t *testing.T) {
	withScale(t, 2)
	n := NodeSize{Abs: Splat(4), Prc: Splat(10), Em: Splat(0.5)}
	// 4*2 + 10% of 200 + 0.5*12*2
	if got := n.Evaluate(200, 12); got != Splat(40) {
		t.Fatalf("Evaluate = %+v", got)
	}
	corners := Abs(Vec4{X: 1, Y: 2, Z: 3, W: 4})
	if got := corners.Evaluate(0, 0); got != (Vec4{X: 2, Y: 4, Z: 6, W: 8}) {
		t.Fatalf("per-corner Evaluate = %+v", got)
	}
	if got := (NodeSize{}).Evaluate(500, 16); got != (Vec4{}) {
		t.Fatalf("zero NodeSize = %+v", got)
	}
}

func TestSetUIScaleClamps(t *testing.T) {
	withScale(t, 1)
	SetUIScale(0.1)
	if UIScale() != 0.5 {
		t.Fatalf("scale = %v", UIScale())
	}
	SetUIScale(10)
	if UIScale() != 4 {
		t.Fatalf("scale = %v", UIScale())
	}
	SetUIScale(1.25)
	if UIScale() != 1.25 {
		t.Fatalf("scale = %v", UIScale())
	}
}

func TestVec4Max(t *testing.T) {
	if got := (Vec4{X: 1, Y: 7, Z: -2, W: 3}).Max(); got != 7 {
		t.Fatalf("Max = %v", got)
	}
}

func TestClampRadii(t *testing.T) {
	got := clampRadii(Vec4{X: 30, Y: -1, Z: 3.4, W: 9.6}, 40, 20)
	if got != (Vec4{X: 10, Y: 0, Z: 3, W: 10}) {
		t.Fatalf("clampRadii = %+v", got)
	}
}

func TestThemeBox(t *testing.T) {
	withScale(t, 1)
	th := fallbackTheme()
	box := ThemeBox(th, 100, 12)
	if box.Radii != Splat(8) || box.Border != Splat(1) {
		t.Fatalf("box = %+v", box)
	}
	if box.Highlight != Primary(500).Resolve(th) || box.Stroke != Surface(700).Resolve(th) {
		t.Fatalf("box colors = %v, %v", box.Highlight, box.Stroke)
	}
	if got := ContainerBox(th, 100, 12).Radii; got != Splat(4) {
		t.Fatalf("container radii = %+v", got)
	}

	withScale(t, 2)
	if got := ThemeBox(th, 100, 12).Border; got != Splat(2) {
		t.Fatalf("scaled border = %+v", got)
	}
}
