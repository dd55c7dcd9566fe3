package eui

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/remeh/sizedwaitgroup"
	dark "github.com/thiagokokada/dark-mode-go"
)

// Library is a set of themes keyed by case-insensitive palette name. The
// palette name comes from the file, so it can differ from Theme.Name.
type Library struct {
	mu     sync.RWMutex
	themes map[string]libEntry
}

type libEntry struct {
	name  string
	theme *Theme
}

// ErrDuplicatePalette reports two palette files whose names differ only in
// case.
var ErrDuplicatePalette = errors.New("duplicate palette name")

func NewLibrary() *Library {
	return &Library{themes: map[string]libEntry{}}
}

// LoadLibrary parses every palette from dir and the embedded set in
// parallel. Palettes that fail to parse are skipped and reported together
// in the returned error; the library still holds everything that loaded.
func LoadLibrary(dir string) (*Library, error) {
	list, err := ListPalettes(dir)
	if err != nil {
		return nil, err
	}
	lib := NewLibrary()

	var (
		errMu sync.Mutex
		errs  []error
	)
	list, errs = dedupePalettes(list)

	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, info := range list {
		wg.Add()
		go func(info PaletteInfo) {
			defer wg.Done()
			t, err := loadPaletteInfo(info)
			if err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
				return
			}
			lib.Add(info.Name, t)
		}(info)
	}
	wg.Wait()
	return lib, errors.Join(errs...)
}

// dedupePalettes keeps one palette per case-folded name. A local file beats
// an embedded palette; between two local files the first in sorted order
// wins and the other is reported.
func dedupePalettes(list []PaletteInfo) ([]PaletteInfo, []error) {
	var errs []error
	idx := map[string]int{}
	out := make([]PaletteInfo, 0, len(list))
	for _, p := range list {
		key := strings.ToLower(p.Name)
		i, dup := idx[key]
		switch {
		case !dup:
			idx[key] = len(out)
			out = append(out, p)
		case out[i].Embedded && !p.Embedded:
			out[i] = p
		case !out[i].Embedded && !p.Embedded:
			errs = append(errs, fmt.Errorf("%w: %s and %s", ErrDuplicatePalette, out[i].Path, p.Path))
		}
	}
	return out, errs
}

// Add stores t under name, replacing any theme with the same name. An empty
// name uses t.Name.
func (l *Library) Add(name string, t *Theme) {
	if t == nil {
		return
	}
	if name == "" {
		name = t.Name
	}
	l.mu.Lock()
	l.themes[strings.ToLower(name)] = libEntry{name: name, theme: t}
	l.mu.Unlock()
}

func (l *Library) Get(name string) (*Theme, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.themes[strings.ToLower(name)]
	return e.theme, ok
}

// Names returns palette names sorted alphabetically.
func (l *Library) Names() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.themes))
	for _, e := range l.themes {
		names = append(names, e.name)
	}
	l.mu.RUnlock()
	sort.Strings(names)
	return names
}

// WithTag returns the names of themes carrying tag.
func (l *Library) WithTag(tag string) []string {
	var names []string
	for _, n := range l.Names() {
		if t, ok := l.Get(n); ok && t.HasTag(tag) {
			names = append(names, n)
		}
	}
	return names
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.themes)
}

var (
	currentTheme  atomic.Pointer[Theme]
	fallback      = fallbackTheme()
	changeMu      sync.Mutex
	changeHandles []func(*Theme)
)

// CurrentTheme returns the active theme snapshot. It is never nil; before
// SetTheme is called the compiled-in fallback is returned. Callers must not
// modify the result.
func CurrentTheme() *Theme {
	if t := currentTheme.Load(); t != nil {
		return t
	}
	return fallback
}

// SetTheme replaces the active theme with a copy of t and notifies
// OnThemeChange handlers.
func SetTheme(t *Theme) {
	if t == nil {
		return
	}
	snap := t.Clone()
	currentTheme.Store(snap)

	changeMu.Lock()
	handlers := append([]func(*Theme)(nil), changeHandles...)
	changeMu.Unlock()
	for _, fn := range handlers {
		fn(snap)
	}
}

// OnThemeChange registers fn to run after every SetTheme.
func OnThemeChange(fn func(*Theme)) {
	if fn == nil {
		return
	}
	changeMu.Lock()
	changeHandles = append(changeHandles, fn)
	changeMu.Unlock()
}

// ApplyPalette loads a palette by name and makes it the current theme.
func ApplyPalette(dir, name string) (*Theme, error) {
	t, err := LoadPalette(dir, name)
	if err != nil {
		return nil, fmt.Errorf("apply palette: %w", err)
	}
	SetTheme(t)
	return CurrentTheme(), nil
}

// isDarkMode is swapped out in tests.
var isDarkMode = dark.IsDarkMode

// DefaultPaletteName picks the built-in palette matching the desktop's
// light or dark preference, preferring dark when detection fails.
func DefaultPaletteName() string {
	darkMode, err := isDarkMode()
	if err != nil || darkMode {
		return "Dark"
	}
	return "Light"
}
