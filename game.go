package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"themekit/eui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hako/durafmt"
	clipboard "golang.design/x/clipboard"
)

const (
	initialWindowW = 1024
	initialWindowH = 640

	gridMargin  = 16
	headerH     = 48
	labelW      = 112
	swatchW     = 80
	swatchH     = 36
	swatchGap   = 6
	statusLineH = 24
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var (
	statusMu   sync.Mutex
	statusText string
	statusTime time.Time

	clipboardReady bool
)

// statusMessage shows msg on the status line for a few seconds.
func statusMessage(msg string) {
	statusMu.Lock()
	statusText = msg
	statusTime = time.Now()
	statusMu.Unlock()
}

func currentStatus() string {
	statusMu.Lock()
	defer statusMu.Unlock()
	if time.Since(statusTime) > 4*time.Second {
		return ""
	}
	return statusText
}

// swatchRow is one row of the preview grid: a fixed role or a custom name.
type swatchRow struct {
	label string
	sel   eui.ThemeColor
}

func rowsFor(t *eui.Theme) []swatchRow {
	rows := make([]swatchRow, 0, len(eui.FixedRoles)+len(t.Custom))
	for _, r := range eui.FixedRoles {
		rows = append(rows, swatchRow{label: roleLabel(r.String()), sel: r.At(eui.DefaultShade)})
	}
	for _, n := range customNames(t) {
		rows = append(rows, swatchRow{label: n, sel: eui.Custom(n, eui.DefaultShade)})
	}
	return rows
}

// swatchRect returns the scaled position and size of the swatch at row,col.
func swatchRect(row, col int, scale float32) (eui.Point, eui.Point) {
	x := float32(gridMargin+labelW+col*(swatchW+swatchGap)) * scale
	y := float32(gridMargin+headerH+row*(swatchH+swatchGap)) * scale
	return eui.Point{X: x, Y: y}, eui.Point{X: swatchW * scale, Y: swatchH * scale}
}

// hitSwatch maps a pointer position to a swatch, if any.
func hitSwatch(px, py float32, rows int, scale float32) (row, col int, ok bool) {
	for r := 0; r < rows; r++ {
		for c := range eui.Stops {
			pos, size := swatchRect(r, c, scale)
			if px >= pos.X && py >= pos.Y && px < pos.X+size.X && py < pos.Y+size.Y {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Game previews the current theme. It implements ebiten.Game.
type Game struct {
	ctx      context.Context
	lib      *eui.Library
	dir      string
	names    []string
	idx      int
	watcher  *eui.Watcher
	loadedAt time.Time

	hoverRow, hoverCol int
	hovering           bool
}

// newGame starts on the palette named cur.
func newGame(ctx context.Context, lib *eui.Library, dir, cur string, watch bool) *Game {
	g := &Game{ctx: ctx, lib: lib, dir: dir, names: lib.Names(), loadedAt: time.Now()}
	for i, n := range g.names {
		if strings.EqualFold(n, cur) {
			g.idx = i
		}
	}
	if watch {
		g.setWatcher(cur)
	}
	eui.OnThemeChange(func(t *eui.Theme) {
		logDebug("theme changed to %s", t.Name)
		ebiten.SetWindowTitle("themekit - " + t.Name)
	})
	return g
}

func (g *Game) setWatcher(name string) {
	g.watcher = eui.NewWatcher(g.dir, name)
	g.watcher.OnReload = func(t *eui.Theme) {
		g.lib.Add(name, t)
		g.loadedAt = time.Now()
		statusMessage("reloaded " + t.Name)
	}
}

func (g *Game) cycleTheme(step int) {
	if len(g.names) == 0 {
		return
	}
	g.idx = (g.idx + step + len(g.names)) % len(g.names)
	t, ok := g.lib.Get(g.names[g.idx])
	if !ok {
		return
	}
	eui.SetTheme(t)
	g.loadedAt = time.Now()
	gs.Theme = g.names[g.idx]
	settingsDirty = true
	if g.watcher != nil {
		g.setWatcher(g.names[g.idx])
	}
}

func (g *Game) setScale(s float32) {
	eui.SetUIScale(s)
	gs.UIScale = eui.UIScale()
	settingsDirty = true
}

func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.watcher != nil {
		g.watcher.Check()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.cycleTheme(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.cycleTheme(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.setScale(eui.UIScale() + 0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.setScale(eui.UIScale() - 0.25)
	}

	t := eui.CurrentTheme()
	rows := rowsFor(t)
	mx, my := ebiten.CursorPosition()
	g.hoverRow, g.hoverCol, g.hovering = hitSwatch(float32(mx), float32(my), len(rows), eui.UIScale())

	if g.hovering && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		hex := rows[g.hoverRow].sel.WithShade(eui.Stops[g.hoverCol]).Resolve(t).Hex()
		if clipboardReady {
			clipboard.Write(clipboard.FmtText, []byte(hex))
			statusMessage("copied " + hex)
		} else {
			statusMessage(hex)
		}
	}
	return nil
}

func background(t *eui.Theme) eui.Color {
	if t.HasTag("Light") {
		return eui.Surface(50).Resolve(t)
	}
	return eui.Surface(900).Resolve(t)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float32, col eui.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col.ToRGBA())
	text.Draw(dst, s, face, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := eui.CurrentTheme()
	scale := eui.UIScale()
	screen.Fill(background(t))

	heading := eui.Fonts.Face(t.FontHeading, headingFontSize*scale)
	label := eui.Fonts.Face(t.FontBase, labelFontSize*scale)

	title := t.Name
	if len(t.Tags) > 0 {
		title += fmt.Sprintf("  %v", t.Tags)
	}
	drawText(screen, title, heading, gridMargin*scale, gridMargin*scale, t.Text)

	for j, s := range eui.Stops {
		pos, _ := swatchRect(0, j, scale)
		drawText(screen, stopLabel(s), label, pos.X, pos.Y-(labelFontSize+6)*scale, t.Text)
	}

	rows := rowsFor(t)
	for i, row := range rows {
		pos, size := swatchRect(i, 0, scale)
		drawText(screen, row.label, label, gridMargin*scale, pos.Y+(size.Y-labelFontSize*scale)/2, t.Text)
		for j, s := range eui.Stops {
			pos, size := swatchRect(i, j, scale)
			sel := row.sel.WithShade(s)
			box := eui.ThemeBox(t, size.Y, labelFontSize)
			if g.hovering && g.hoverRow == i && g.hoverCol == j {
				eui.DrawBorderedRect(screen, pos, size, box.Radii, box.Border.Scale(2), sel.Resolve(t), box.Highlight)
				drawText(screen, sel.Resolve(t).Hex(), label, pos.X+4*scale, pos.Y+4*scale, sel.ResolveText(t))
				continue
			}
			eui.DrawBorderedRect(screen, pos, size, box.Radii, box.Border, sel.Resolve(t), box.Stroke)
		}
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	status := fmt.Sprintf("←/→ theme   +/- scale (%.2f)   loaded %s ago", scale,
		durafmt.Parse(time.Since(g.loadedAt)).LimitFirstN(1).Format(shortUnits))
	if msg := currentStatus(); msg != "" {
		status = msg
	}
	bar := eui.ContainerBox(t, float32(h), labelFontSize)
	barPos := eui.Point{X: 0, Y: float32(h) - statusLineH*scale}
	barSize := eui.Point{X: float32(w), Y: statusLineH * scale}
	eui.DrawRoundRect(screen, barPos, barSize, eui.Vec4{X: bar.Radii.X, Y: bar.Radii.Y}, eui.Surface(700).Resolve(t))
	drawText(screen, status, label, gridMargin*scale, barPos.Y+4*scale, eui.Surface(700).ResolveText(t))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 512 && outsideHeight > 384 {
		if gs.WindowWidth != outsideWidth || gs.WindowHeight != outsideHeight {
			gs.WindowWidth = outsideWidth
			gs.WindowHeight = outsideHeight
			settingsDirty = true
		}
	}
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context, g *Game) {
	if err := clipboard.Init(); err != nil {
		logWarn("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}

	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowTitle("themekit - " + eui.CurrentTheme().Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logError("ebiten: %v", err)
	}
	if settingsDirty {
		saveSettings()
	}
}
