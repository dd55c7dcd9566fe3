package eui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// isolateTheme restores the active theme and change handlers after a test.
func isolateTheme(t *testing.T) {
	t.Helper()
	old := currentTheme.Load()
	changeMu.Lock()
	handlers := changeHandles
	changeMu.Unlock()
	t.Cleanup(func() {
		currentTheme.Store(old)
		changeMu.Lock()
		changeHandles = handlers
		changeMu.Unlock()
	})
}

func TestCurrentThemeNeverNil(t *testing.T) {
	isolateTheme(t)
	currentTheme.Store(nil)
	th := CurrentTheme()
	if th == nil || th.Name != "Fallback" {
		t.Fatalf("CurrentTheme = %+v", th)
	}
	if Primary(500).Resolve(th) == White {
		t.Fatalf("fallback primary has no shades")
	}
	SetTheme(nil)
	if CurrentTheme() != th {
		t.Fatalf("SetTheme(nil) replaced the theme")
	}
}

func TestSetThemeSnapshot(t *testing.T) {
	isolateTheme(t)
	src := rampTheme()
	SetTheme(src)
	before := Primary(500).Resolve(CurrentTheme())

	src.Primary.Base.Shades[2] = NewColor(1, 1, 1, 255)
	src.Custom["brand"] = ColorPair{}
	if got := Primary(500).Resolve(CurrentTheme()); got != before {
		t.Fatalf("editing the source changed the active theme: %v", got)
	}
	if _, err := Custom("brand", 500).Lookup(CurrentTheme()); err != nil {
		t.Fatalf("custom role lost: %v", err)
	}
}

func TestOnThemeChange(t *testing.T) {
	isolateTheme(t)
	var got []string
	OnThemeChange(func(th *Theme) { got = append(got, th.Name) })
	OnThemeChange(nil)
	SetTheme(&Theme{Name: "one"})
	SetTheme(&Theme{Name: "two"})
	if strings.Join(got, ",") != "one,two" {
		t.Fatalf("handlers saw %v", got)
	}
}

func TestConcurrentReadersSeeWholeThemes(t *testing.T) {
	isolateTheme(t)
	a, b := rampTheme(), fallbackTheme()
	a.Name, b.Name = "a", "b"
	wantA := Primary(500).Resolve(a)
	wantB := Primary(500).Resolve(b)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				th := CurrentTheme()
				got := Primary(500).Resolve(th)
				if (th.Name == "a" && got != wantA) || (th.Name == "b" && got != wantB) {
					t.Errorf("torn read: %s resolved %v", th.Name, got)
					return
				}
			}
		}()
	}
	for j := 0; j < 200; j++ {
		SetTheme(a)
		SetTheme(b)
	}
	wg.Wait()
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary("")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(lib.Names(), ",") != "Dark,HighContrast,Light" {
		t.Fatalf("names = %v", lib.Names())
	}
	if strings.Join(lib.WithTag("dark"), ",") != "Dark,HighContrast" {
		t.Fatalf("dark themes = %v", lib.WithTag("dark"))
	}
	if _, ok := lib.Get("light"); !ok {
		t.Fatalf("lookup is case-sensitive")
	}
}

func TestLoadLibraryKeepsGoodPalettes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Loop.json"), []byte(`{"Colors":{"a":"b","b":"a"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	lib, err := LoadLibrary(dir)
	if err == nil {
		t.Fatalf("expected load errors")
	}
	if !errors.Is(err, ErrColorCycle) {
		t.Fatalf("err = %v", err)
	}
	if lib.Len() != 3 {
		t.Fatalf("library has %d themes: %v", lib.Len(), lib.Names())
	}
}

func TestLibraryKeyedByFileName(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("ocean.json", `{"Name":"Ocean Blue","Tags":["Dark"]}`)
	write("twin.json", `{"Name":"Ocean Blue","Tags":["Light"]}`)

	lib, err := LoadLibrary(dir)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(lib.Names(), ",") != "Dark,HighContrast,Light,ocean,twin" {
		t.Fatalf("names = %v", lib.Names())
	}
	ocean, ok := lib.Get("Ocean")
	if !ok || ocean.Name != "Ocean Blue" || !ocean.HasTag("Dark") {
		t.Fatalf("ocean = %+v, %v", ocean, ok)
	}
	twin, ok := lib.Get("twin")
	if !ok || !twin.HasTag("Light") {
		t.Fatalf("twin = %+v, %v", twin, ok)
	}
}

func TestLibraryDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("Dupe.json", `{"Tags":["First"]}`)
	write("dupe.yaml", "tags: [Second]\n")
	write("dark.json", `{"Tags":["Mine"]}`)

	for i := 0; i < 5; i++ {
		lib, err := LoadLibrary(dir)
		if !errors.Is(err, ErrDuplicatePalette) {
			t.Fatalf("err = %v", err)
		}
		if lib.Len() != 4 {
			t.Fatalf("library = %v", lib.Names())
		}
		if th, _ := lib.Get("dupe"); !th.HasTag("First") {
			t.Fatalf("kept %+v", th)
		}
		// A local file replaces the built-in palette regardless of case.
		if th, _ := lib.Get("Dark"); !th.HasTag("Mine") {
			t.Fatalf("dark = %+v", th)
		}
	}

	th, err := LoadPalette(dir, "Dark")
	if err != nil || !th.HasTag("Mine") {
		t.Fatalf("LoadPalette(Dark) = %+v, %v", th, err)
	}
}

func TestApplyPalette(t *testing.T) {
	isolateTheme(t)
	th, err := ApplyPalette("", "Light")
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Light" || CurrentTheme().Name != "Light" {
		t.Fatalf("applied %s, current %s", th.Name, CurrentTheme().Name)
	}
	if _, err := ApplyPalette("", "Nope"); !errors.Is(err, ErrUnknownPalette) {
		t.Fatalf("err = %v", err)
	}
	if CurrentTheme().Name != "Light" {
		t.Fatalf("failed apply changed the theme")
	}
}

func TestDefaultPaletteName(t *testing.T) {
	old := isDarkMode
	t.Cleanup(func() { isDarkMode = old })

	isDarkMode = func() (bool, error) { return false, nil }
	if got := DefaultPaletteName(); got != "Light" {
		t.Fatalf("light desktop -> %s", got)
	}
	isDarkMode = func() (bool, error) { return true, nil }
	if got := DefaultPaletteName(); got != "Dark" {
		t.Fatalf("dark desktop -> %s", got)
	}
	isDarkMode = func() (bool, error) { return false, errors.New("no desktop") }
	if got := DefaultPaletteName(); got != "Dark" {
		t.Fatalf("undetectable desktop -> %s", got)
	}
}
