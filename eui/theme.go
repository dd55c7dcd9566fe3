package eui

import "strings"

// Theme holds the full visual vocabulary of one design. Themes are built
// once and replaced wholesale; consumers never edit one in place.
type Theme struct {
	// Name of the theme
	Name string
	// Tags such as "Dark" or "Colorblind"
	Tags []string

	Primary   ColorPair
	Secondary ColorPair
	Tertiary  ColorPair
	// Info, Warning, Success and Error color the matching status widgets.
	Info    ColorPair
	Warning ColorPair
	Success ColorPair
	Error   ColorPair
	// Surface is the background fill.
	Surface ColorPair

	// Text is the default text color.
	Text Color

	// Custom holds roles that don't fit the fixed eight.
	Custom map[string]ColorPair

	FontBase    FontHandle
	FontHeading FontHandle

	RoundingContainer NodeSize
	RoundingBase      NodeSize
	BorderThickness   NodeSize

	HighlightColor ThemeColor
	BorderColor    ThemeColor
}

// Pair returns the ColorPair for a fixed role.
func (t *Theme) Pair(r Role) (ColorPair, bool) {
	switch r {
	case RolePrimary:
		return t.Primary, true
	case RoleSecondary:
		return t.Secondary, true
	case RoleTertiary:
		return t.Tertiary, true
	case RoleInfo:
		return t.Info, true
	case RoleWarning:
		return t.Warning, true
	case RoleSuccess:
		return t.Success, true
	case RoleError:
		return t.Error, true
	case RoleSurface, roleUnset:
		return t.Surface, true
	}
	return ColorPair{}, false
}

// pairRef is used by the palette loader to fill fixed roles.
func (t *Theme) pairRef(r Role) *ColorPair {
	switch r {
	case RolePrimary:
		return &t.Primary
	case RoleSecondary:
		return &t.Secondary
	case RoleTertiary:
		return &t.Tertiary
	case RoleInfo:
		return &t.Info
	case RoleWarning:
		return &t.Warning
	case RoleSuccess:
		return &t.Success
	case RoleError:
		return &t.Error
	case RoleSurface:
		return &t.Surface
	}
	return nil
}

func (t *Theme) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if strings.EqualFold(tg, tag) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	if t == nil {
		return nil
	}
	c := *t
	c.Tags = append([]string(nil), t.Tags...)
	for _, r := range FixedRoles {
		p := c.pairRef(r)
		*p = p.Clone()
	}
	if t.Custom != nil {
		c.Custom = make(map[string]ColorPair, len(t.Custom))
		for k, v := range t.Custom {
			c.Custom[k] = v.Clone()
		}
	}
	c.HighlightColor.pair = t.HighlightColor.pair.Clone()
	c.BorderColor.pair = t.BorderColor.pair.Clone()
	return &c
}
