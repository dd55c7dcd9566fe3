package eui

// Font handle names the previewer registers and the built-in palettes use.
const (
	FontBaseName    = "base"
	FontHeadingName = "heading"
)

// defaultRampSteps matches the ten conventional stops.
const defaultRampSteps = len(Stops)

// fallbackTheme is served by CurrentTheme before any palette has been
// applied. It mirrors the toolkit's compiled-in dark greys and teal accent.
func fallbackTheme() *Theme {
	ramp := func(r, g, b uint8) ColorSet {
		return GenerateRamp(NewColor(r, g, b, 255), defaultRampSteps)
	}
	white := NewColor(255, 255, 255, 255)
	return &Theme{
		Name: "Fallback",
		Tags: []string{"Dark"},

		Primary:   ColorPair{Text: white, Base: ramp(0, 160, 160)},
		Secondary: ColorPair{Text: white, Base: ramp(96, 96, 96)},
		Tertiary:  ColorPair{Text: white, Base: ramp(64, 64, 64)},
		Info:      ColorPair{Text: white, Base: ramp(40, 120, 220)},
		Warning:   ColorPair{Text: NewColor(32, 32, 32, 255), Base: ramp(230, 170, 40)},
		Success:   ColorPair{Text: white, Base: ramp(50, 170, 90)},
		Error:     ColorPair{Text: white, Base: ramp(210, 60, 60)},
		Surface:   ColorPair{Text: white, Base: ramp(48, 48, 48)},

		Text: white,

		FontBase:    FontHandle{Name: FontBaseName},
		FontHeading: FontHandle{Name: FontHeadingName},

		RoundingContainer: Uniform(4),
		RoundingBase:      Uniform(8),
		BorderThickness:   Uniform(1),

		HighlightColor: Primary(500),
		BorderColor:    Surface(700),
	}
}
