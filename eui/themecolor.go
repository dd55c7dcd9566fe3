package eui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Role tags which ColorPair a ThemeColor selects.
type Role int

const (
	roleUnset Role = iota
	RolePrimary
	RoleSecondary
	RoleTertiary
	RoleInfo
	RoleWarning
	RoleSuccess
	RoleError
	RoleSurface
	RoleCustom
	RoleUnique
)

// DefaultShade is the stop used when a selector omits one.
const DefaultShade float32 = 500

var (
	// ErrUnknownCustomColor is returned by Lookup when a Custom selector names
	// a role the theme does not define.
	ErrUnknownCustomColor = errors.New("unknown custom color")
	ErrUnknownRole        = errors.New("unknown color role")
	ErrInvalidSelector    = errors.New("invalid theme color")
)

var roleNames = map[Role]string{
	RolePrimary:   "primary",
	RoleSecondary: "secondary",
	RoleTertiary:  "tertiary",
	RoleInfo:      "info",
	RoleWarning:   "warning",
	RoleSuccess:   "success",
	RoleError:     "error",
	RoleSurface:   "surface",
	RoleCustom:    "custom",
	RoleUnique:    "unique",
}

func (r Role) String() string {
	if r == roleUnset {
		return roleNames[RoleSurface]
	}
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// Fixed reports whether r is one of the eight roles every theme defines.
func (r Role) Fixed() bool { return r >= RolePrimary && r <= RoleSurface }

// ParseRole maps a role name (case-insensitive) back to its Role.
func ParseRole(s string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for r, n := range roleNames {
		if n == key {
			return r, nil
		}
	}
	return roleUnset, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// ThemeColor selects a color from whichever Theme is active: one of the
// fixed roles, a named custom role, or an ad-hoc pair, plus a shade on the
// 0..1000 design scale. The zero value selects Surface(500).
type ThemeColor struct {
	role  Role
	shade float32
	name  string
	pair  ColorPair
}

func Primary(shade float32) ThemeColor { return ThemeColor{role: RolePrimary, shade: shade} }
func Secondary(shade float32) ThemeColor { return ThemeColor{role: RoleSecondary, shade: shade} }
func Tertiary(shade float32) ThemeColor { return ThemeColor{role: RoleTertiary, shade: shade} }
func Info(shade float32) ThemeColor { return ThemeColor{role: RoleInfo, shade: shade} }
func Warning(shade float32) ThemeColor { return ThemeColor{role: RoleWarning, shade: shade} }
func Success(shade float32) ThemeColor { return ThemeColor{role: RoleSuccess, shade: shade} }
func Error(shade float32) ThemeColor { return ThemeColor{role: RoleError, shade: shade} }
func Surface(shade float32) ThemeColor { return ThemeColor{role: RoleSurface, shade: shade} }

// Custom selects a role from Theme.Custom by name.
func Custom(name string, shade float32) ThemeColor {
	return ThemeColor{role: RoleCustom, name: name, shade: shade}
}

// Unique carries its own pair and ignores the theme entirely.
func Unique(pair ColorPair, shade float32) ThemeColor {
	return ThemeColor{role: RoleUnique, pair: pair.Clone(), shade: shade}
}

// DefaultThemeColor is Surface(500).
func DefaultThemeColor() ThemeColor { return Surface(DefaultShade) }

func (c ThemeColor) normalized() ThemeColor {
	if c.role == roleUnset {
		return DefaultThemeColor()
	}
	return c
}

func (c ThemeColor) Role() Role { return c.normalized().role }
func (c ThemeColor) Shade() float32 { return c.normalized().shade }
func (c ThemeColor) Name() string { return c.name }
func (c ThemeColor) UniquePair() ColorPair { return c.pair }

// WithShade returns the same selector at another stop.
func (c ThemeColor) WithShade(shade float32) ThemeColor {
	c = c.normalized()
	c.shade = shade
	return c
}

func (c ThemeColor) Equal(o ThemeColor) bool {
	c, o = c.normalized(), o.normalized()
	if c.role != o.role || c.shade != o.shade {
		return false
	}
	switch c.role {
	case RoleCustom:
		return c.name == o.name
	case RoleUnique:
		return c.pair.Equal(o.pair)
	}
	return true
}

// Lookup returns the pair c selects from t. Custom names missing from the
// theme are reported with ErrUnknownCustomColor.
func (c ThemeColor) Lookup(t *Theme) (ColorPair, error) {
	c = c.normalized()
	if c.role == RoleUnique {
		return c.pair, nil
	}
	if t == nil {
		return ColorPair{}, errors.New("nil theme")
	}
	switch c.role {
	case RoleCustom:
		p, ok := t.Custom[c.name]
		if !ok {
			return ColorPair{}, fmt.Errorf("%w: %q in theme %q", ErrUnknownCustomColor, c.name, t.Name)
		}
		return p, nil
	default:
		p, ok := t.Pair(c.role)
		if !ok {
			return ColorPair{}, fmt.Errorf("%w: %v", ErrUnknownRole, c.role)
		}
		return p, nil
	}
}

// Resolve returns the shade c selects from t. It never fails: anything that
// cannot be found resolves through an empty ramp, which is White.
func (c ThemeColor) Resolve(t *Theme) Color {
	p, _ := c.Lookup(t)
	return p.Base.Val(c.Shade())
}

// ResolveText returns the text color paired with c's ramp. Missing custom
// roles fall back to the theme's global text color.
func (c ThemeColor) ResolveText(t *Theme) Color {
	p, err := c.Lookup(t)
	if err != nil {
		if t == nil {
			return White
		}
		return t.Text
	}
	return p.Text
}

// String renders the selector in the form ParseThemeColor accepts:
// "primary-500", "custom:brand-300" or "unique:#112233-400".
func (c ThemeColor) String() string {
	c = c.normalized()
	shade := strconv.FormatFloat(float64(c.shade), 'f', -1, 32)
	switch c.role {
	case RoleCustom:
		return "custom:" + c.name + "-" + shade
	case RoleUnique:
		return "unique:" + c.pair.Base.Val(c.shade).Hex() + "-" + shade
	}
	return c.role.String() + "-" + shade
}

// ParseThemeColor parses the String form. The shade suffix is optional,
// defaults to 500 and must be a finite number. A unique selector parses to a
// single-shade ramp whose text color is the global default.
func ParseThemeColor(s string) (ThemeColor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ThemeColor{}, fmt.Errorf("%w: empty", ErrInvalidSelector)
	}
	body, shade := s, DefaultShade
	if i := strings.LastIndex(s, "-"); i > 0 {
		// "primary--5" carries a negative shade.
		if i > 1 && s[i-1] == '-' {
			i--
		}
		if v, err := strconv.ParseFloat(s[i+1:], 32); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			body, shade = s[:i], float32(v)
		}
	}
	if kind, arg, ok := strings.Cut(body, ":"); ok {
		if arg == "" {
			return ThemeColor{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
		}
		switch strings.ToLower(kind) {
		case "custom":
			return Custom(arg, shade), nil
		case "unique":
			col, err := ParseColor(arg)
			if err != nil {
				return ThemeColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, s, err)
			}
			return Unique(ColorPair{Text: White, Base: SingleShade(col)}, shade), nil
		}
		return ThemeColor{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
	r, err := ParseRole(body)
	if err != nil || !r.Fixed() {
		return ThemeColor{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
	return r.At(shade), nil
}

func (c ThemeColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ThemeColor) UnmarshalText(b []byte) error {
	parsed, err := ParseThemeColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
