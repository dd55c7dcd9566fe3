package eui

const (
	// rampTint is how far toward white the lightest generated shade sits.
	rampTint = 0.92
	// rampShade is how far toward black the darkest generated shade sits.
	rampShade = 0.82
)

// GenerateRamp builds steps shades running from a near-white tint of base,
// through base at the middle index, to a near-black shade. Blending happens
// in Lab space so the perceived lightness steps are even.
func GenerateRamp(base Color, steps int) ColorSet {
	if steps <= 0 {
		return ColorSet{}
	}
	if steps == 1 {
		return SingleShade(base)
	}
	light := base.Lerp(White, rampTint)
	dark := base.Lerp(Black, rampShade)
	mid := (steps - 1) / 2
	shades := make([]Color, steps)
	for i := range shades {
		switch {
		case i == mid:
			shades[i] = base
		case i < mid:
			shades[i] = light.Lerp(base, float64(i)/float64(mid))
		default:
			shades[i] = base.Lerp(dark, float64(i-mid)/float64(steps-1-mid))
		}
	}
	return ColorSet{Shades: shades}
}
