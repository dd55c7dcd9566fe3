package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"themekit/eui"
)

var (
	themeName   string
	paletteDir  string
	exportName  string
	resolveSel  string
	uiScaleFlag float64
	doDump      bool
	doList      bool
	doWatch     bool
	doDebug     bool
)

func main() {
	flag.StringVar(&themeName, "theme", "", "palette to show (default: last used, then desktop light/dark preference)")
	flag.StringVar(&paletteDir, "palettes", "themes", "directory searched for palette files before the built-in set")
	flag.StringVar(&exportName, "export", "", "save the selected theme as <palettes>/<name>.json and exit")
	flag.StringVar(&resolveSel, "resolve", "", "print the color a selector such as primary-500 resolves to and exit")
	flag.Float64Var(&uiScaleFlag, "scale", 0, "UI scale (0.5 to 4)")
	flag.BoolVar(&doDump, "dump", false, "print every role at every stop and exit")
	flag.BoolVar(&doList, "list", false, "list available palettes and exit")
	flag.BoolVar(&doWatch, "watch", false, "reload the palette file when it changes on disk")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.Parse()

	headless := doDump || doList || exportName != "" || resolveSel != ""
	silent = headless
	setupLogging(doDebug)

	loadSettings()
	if uiScaleFlag > 0 {
		gs.UIScale = float32(uiScaleFlag)
	}
	eui.SetUIScale(gs.UIScale)

	lib, err := eui.LoadLibrary(paletteDir)
	if lib == nil {
		log.Fatalf("load palettes: %v", err)
	}
	if err != nil {
		logWarn("some palettes failed to load: %v", err)
	}
	logDebug("loaded %d palettes from %s and the built-in set", lib.Len(), paletteDir)

	name := pickTheme(themeName, gs.Theme)
	t, ok := lib.Get(name)
	if !ok {
		logWarn("palette %q not found, using %s", name, eui.DefaultPaletteName())
		name = eui.DefaultPaletteName()
		t, ok = lib.Get(name)
	}
	if ok {
		eui.SetTheme(t)
	}
	current := eui.CurrentTheme()

	if headless {
		if err := runHeadless(current, lib); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	initFont()
	eui.EnsurePaletteDocs(paletteDir)
	if ok && gs.Theme != name {
		gs.Theme = name
		settingsDirty = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	runGame(ctx, newGame(ctx, lib, paletteDir, name, doWatch))
}

// pickTheme prefers the flag, then the saved setting, then the desktop's
// light or dark preference.
func pickTheme(flagName, saved string) string {
	switch {
	case flagName != "":
		return flagName
	case saved != "":
		return saved
	}
	return eui.DefaultPaletteName()
}

func runHeadless(t *eui.Theme, lib *eui.Library) error {
	switch {
	case doList:
		infos, err := eui.ListPalettes(paletteDir)
		if err != nil {
			return err
		}
		return writeList(os.Stdout, infos, lib)
	case exportName != "":
		out := t.Clone()
		out.Name = exportName
		path, err := eui.SavePalette(paletteDir, out)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Println(path)
		return nil
	case resolveSel != "":
		line, err := resolveSelector(t, resolveSel)
		if err != nil {
			return err
		}
		fmt.Println(line)
		return nil
	case doDump:
		return writeDump(os.Stdout, t)
	}
	return errors.New("nothing to do")
}
