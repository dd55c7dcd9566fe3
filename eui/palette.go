package eui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed themes/*.json
var embeddedPalettes embed.FS

var (
	ErrUnknownPalette = errors.New("unknown palette")
	ErrColorCycle     = errors.New("color reference cycle")
)

// paletteFile is the on-disk form of a Theme. Colors may be hex or HSV
// strings or names from the Colors table, which may in turn reference each
// other.
type paletteFile struct {
	Comment string            `json:",omitempty" yaml:"comment,omitempty"`
	Name    string            `yaml:"name"`
	Tags    []string          `json:",omitempty" yaml:"tags,omitempty"`
	Colors  map[string]string `json:",omitempty" yaml:"colors,omitempty"`
	Text    string            `json:",omitempty" yaml:"text,omitempty"`

	Roles  map[string]pairFile `yaml:"roles"`
	Custom map[string]pairFile `json:",omitempty" yaml:"custom,omitempty"`

	FontBase    string `json:",omitempty" yaml:"fontBase,omitempty"`
	FontHeading string `json:",omitempty" yaml:"fontHeading,omitempty"`

	RoundingContainer *NodeSize `json:",omitempty" yaml:"roundingContainer,omitempty"`
	RoundingBase      *NodeSize `json:",omitempty" yaml:"roundingBase,omitempty"`
	BorderThickness   *NodeSize `json:",omitempty" yaml:"borderThickness,omitempty"`

	HighlightColor string `json:",omitempty" yaml:"highlightColor,omitempty"`
	BorderColor    string `json:",omitempty" yaml:"borderColor,omitempty"`
}

// pairFile lists shades explicitly, or names a Base color and a number of
// Steps to generate a ramp from. Explicit Shades win when both are present.
type pairFile struct {
	Text   string   `json:",omitempty" yaml:"text,omitempty"`
	Shades []string `json:",omitempty" yaml:"shades,omitempty"`
	Base   string   `json:",omitempty" yaml:"base,omitempty"`
	Steps  int      `json:",omitempty" yaml:"steps,omitempty"`
}

// PaletteInfo describes one palette file that LoadPalette can find.
type PaletteInfo struct {
	Name     string
	Path     string
	Size     int64
	Embedded bool
}

type colorResolver struct {
	raw      map[string]string
	resolved map[string]Color
}

func newColorResolver(colors map[string]string) *colorResolver {
	r := &colorResolver{raw: map[string]string{}, resolved: map[string]Color{}}
	for k, v := range colors {
		r.raw[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return r
}

func (r *colorResolver) color(s string) (Color, error) {
	return r.resolve(s, map[string]bool{})
}

// resolve follows named references recursively; seen guards against cycles.
func (r *colorResolver) resolve(s string, seen map[string]bool) (Color, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	if c, ok := r.resolved[key]; ok {
		return c, nil
	}
	if val, ok := r.raw[key]; ok {
		if seen[key] {
			return Color{}, fmt.Errorf("%w for %s", ErrColorCycle, key)
		}
		seen[key] = true
		c, err := r.resolve(val, seen)
		if err != nil {
			return Color{}, err
		}
		r.resolved[key] = c
		return c, nil
	}
	return ParseColor(s)
}

func (r *colorResolver) pair(pf pairFile) (ColorPair, error) {
	var p ColorPair
	if pf.Text != "" {
		c, err := r.color(pf.Text)
		if err != nil {
			return ColorPair{}, fmt.Errorf("text: %w", err)
		}
		p.Text = c
	}
	switch {
	case len(pf.Shades) > 0:
		shades := make([]Color, 0, len(pf.Shades))
		for i, s := range pf.Shades {
			c, err := r.color(s)
			if err != nil {
				return ColorPair{}, fmt.Errorf("shade %d: %w", i, err)
			}
			shades = append(shades, c)
		}
		p.Base = ColorSet{Shades: shades}
	case pf.Base != "":
		c, err := r.color(pf.Base)
		if err != nil {
			return ColorPair{}, fmt.Errorf("base: %w", err)
		}
		steps := pf.Steps
		if steps == 0 {
			steps = defaultRampSteps
		}
		p.Base = GenerateRamp(c, steps)
	}
	return p, nil
}

// ParsePalette decodes palette data. format is "json", "yaml" or "yml";
// an empty format means JSON.
func ParsePalette(data []byte, format string) (*Theme, error) {
	var pf paletteFile
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "", "json":
		if err := json.Unmarshal(data, &pf); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported palette format %q", format)
	}
	return pf.theme()
}

func (pf *paletteFile) theme() (*Theme, error) {
	res := newColorResolver(pf.Colors)
	for n := range pf.Colors {
		if _, err := res.color(n); err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
	}

	def := fallbackTheme()
	t := &Theme{
		Name:              pf.Name,
		Tags:              append([]string(nil), pf.Tags...),
		Text:              White,
		FontBase:          def.FontBase,
		FontHeading:       def.FontHeading,
		RoundingContainer: def.RoundingContainer,
		RoundingBase:      def.RoundingBase,
		BorderThickness:   def.BorderThickness,
		HighlightColor:    def.HighlightColor,
		BorderColor:       def.BorderColor,
	}
	if pf.Text != "" {
		c, err := res.color(pf.Text)
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		t.Text = c
	}
	for name, rf := range pf.Roles {
		role, err := ParseRole(name)
		if err != nil || !role.Fixed() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, name)
		}
		p, err := res.pair(rf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		*t.pairRef(role) = p
	}
	if len(pf.Custom) > 0 {
		t.Custom = make(map[string]ColorPair, len(pf.Custom))
		for name, cf := range pf.Custom {
			p, err := res.pair(cf)
			if err != nil {
				return nil, fmt.Errorf("custom %s: %w", name, err)
			}
			t.Custom[name] = p
		}
	}
	if pf.FontBase != "" {
		t.FontBase = FontHandle{Name: pf.FontBase}
	}
	if pf.FontHeading != "" {
		t.FontHeading = FontHandle{Name: pf.FontHeading}
	}
	if pf.RoundingContainer != nil {
		t.RoundingContainer = *pf.RoundingContainer
	}
	if pf.RoundingBase != nil {
		t.RoundingBase = *pf.RoundingBase
	}
	if pf.BorderThickness != nil {
		t.BorderThickness = *pf.BorderThickness
	}
	if pf.HighlightColor != "" {
		sel, err := ParseThemeColor(pf.HighlightColor)
		if err != nil {
			return nil, fmt.Errorf("highlight: %w", err)
		}
		t.HighlightColor = sel
	}
	if pf.BorderColor != "" {
		sel, err := ParseThemeColor(pf.BorderColor)
		if err != nil {
			return nil, fmt.Errorf("border: %w", err)
		}
		t.BorderColor = sel
	}
	return t, nil
}

var paletteExts = []string{".json", ".yaml", ".yml"}

// LoadPalette reads the named palette, trying dir first and falling back to
// the embedded palettes. The file name sets the theme name when the palette
// does not carry one.
func LoadPalette(dir, name string) (*Theme, error) {
	info, err := findPalette(dir, name)
	if err != nil {
		return nil, err
	}
	return loadPaletteInfo(info)
}

func loadPaletteInfo(info PaletteInfo) (*Theme, error) {
	var (
		data []byte
		err  error
	)
	if info.Embedded {
		data, err = embeddedPalettes.ReadFile(info.Path)
	} else {
		data, err = os.ReadFile(info.Path)
	}
	if err != nil {
		return nil, err
	}
	t, err := ParsePalette(data, filepath.Ext(info.Path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", info.Name, err)
	}
	if t.Name == "" {
		t.Name = info.Name
	}
	return t, nil
}

func findPalette(dir, name string) (PaletteInfo, error) {
	if name == "" {
		return PaletteInfo{}, fmt.Errorf("%w: empty name", ErrUnknownPalette)
	}
	list, err := ListPalettes(dir)
	if err != nil {
		return PaletteInfo{}, err
	}
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}
	for _, p := range list {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return PaletteInfo{}, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
}

// ListPalettes returns the palettes available from dir and the embedded set,
// sorted by name. A file in dir hides an embedded palette of the same name,
// ignoring case.
func ListPalettes(dir string) ([]PaletteInfo, error) {
	byName := map[string]PaletteInfo{}

	entries, err := fs.ReadDir(embeddedPalettes, "themes")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !isPaletteFile(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		byName[name] = PaletteInfo{Name: name, Path: path.Join("themes", e.Name()), Size: fi.Size(), Embedded: true}
	}

	if dir != "" {
		local, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		for _, e := range local {
			if e.IsDir() || !isPaletteFile(e.Name()) {
				continue
			}
			fi, err := e.Info()
			if err != nil {
				continue
			}
			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			for n, p := range byName {
				if p.Embedded && strings.EqualFold(n, name) {
					delete(byName, n)
				}
			}
			byName[name] = PaletteInfo{Name: name, Path: filepath.Join(dir, e.Name()), Size: fi.Size()}
		}
	}

	list := make([]PaletteInfo, 0, len(byName))
	for _, p := range byName {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func isPaletteFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range paletteExts {
		if ext == e {
			return true
		}
	}
	return false
}

// SavePalette writes t to dir/<t.Name>.json with every shade spelled out.
func SavePalette(dir string, t *Theme) (string, error) {
	if t == nil || t.Name == "" {
		return "", fmt.Errorf("theme name required")
	}
	data, err := json.MarshalIndent(paletteFromTheme(t), "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	file := filepath.Join(dir, t.Name+".json")
	if err := os.WriteFile(file+".tmp", data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(file+".tmp", file); err != nil {
		return "", err
	}
	return file, nil
}

func pairToFile(p ColorPair) pairFile {
	pf := pairFile{Text: p.Text.Hex()}
	for _, s := range p.Base.Shades {
		pf.Shades = append(pf.Shades, s.Hex())
	}
	return pf
}

func paletteFromTheme(t *Theme) paletteFile {
	pf := paletteFile{
		Name:              t.Name,
		Tags:              t.Tags,
		Text:              t.Text.Hex(),
		Roles:             make(map[string]pairFile, len(FixedRoles)),
		FontBase:          t.FontBase.Name,
		FontHeading:       t.FontHeading.Name,
		RoundingContainer: &t.RoundingContainer,
		RoundingBase:      &t.RoundingBase,
		BorderThickness:   &t.BorderThickness,
		HighlightColor:    t.HighlightColor.String(),
		BorderColor:       t.BorderColor.String(),
	}
	for _, r := range FixedRoles {
		p, _ := t.Pair(r)
		pf.Roles[r.String()] = pairToFile(p)
	}
	if len(t.Custom) > 0 {
		pf.Custom = make(map[string]pairFile, len(t.Custom))
		for k, v := range t.Custom {
			pf.Custom[k] = pairToFile(v)
		}
	}
	return pf
}
