package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"themekit/eui"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// roleLabel turns "primary" into "Primary" for display.
func roleLabel(name string) string {
	return titleCaser.String(name)
}

func stopLabel(stop float32) string {
	return strconv.FormatFloat(float64(stop), 'f', -1, 32)
}

// customNames returns the theme's custom role names in a stable order.
func customNames(t *eui.Theme) []string {
	names := make([]string, 0, len(t.Custom))
	for n := range t.Custom {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// writeDump prints every fixed and custom role at every stop.
func writeDump(w io.Writer, t *eui.Theme) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Theme %s", t.Name)
	if len(t.Tags) > 0 {
		fmt.Fprintf(tw, " [%s]", strings.Join(t.Tags, ", "))
	}
	fmt.Fprintln(tw)

	fmt.Fprint(tw, "Role\tText")
	for _, s := range eui.Stops {
		fmt.Fprintf(tw, "\t%s", stopLabel(s))
	}
	fmt.Fprintln(tw)

	table := eui.StopTable()
	for i, r := range eui.FixedRoles {
		fmt.Fprintf(tw, "%s\t%s", roleLabel(r.String()), table[i][0].ResolveText(t).Hex())
		for _, sel := range table[i] {
			fmt.Fprintf(tw, "\t%s", sel.Resolve(t).Hex())
		}
		fmt.Fprintln(tw)
	}
	for _, n := range customNames(t) {
		sel := eui.Custom(n, eui.DefaultShade)
		fmt.Fprintf(tw, "%s*\t%s", n, sel.ResolveText(t).Hex())
		for _, s := range eui.Stops {
			fmt.Fprintf(tw, "\t%s", sel.WithShade(s).Resolve(t).Hex())
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Text %s\n", t.Text.Hex())
	fmt.Fprintf(w, "Fonts base=%s heading=%s\n", t.FontBase.Name, t.FontHeading.Name)
	fmt.Fprintf(w, "Highlight %s -> %s\n", t.HighlightColor, t.HighlightColor.Resolve(t).Hex())
	fmt.Fprintf(w, "Border %s -> %s\n", t.BorderColor, t.BorderColor.Resolve(t).Hex())
	box := eui.ContainerBox(t, 0, labelFontSize)
	base := eui.ThemeBox(t, 0, labelFontSize)
	_, err := fmt.Fprintf(w, "Rounding container=%v base=%v border=%v (scale %.2f)\n",
		box.Radii, base.Radii, base.Border, eui.UIScale())
	return err
}

// writeList prints the palettes found on disk and embedded, with the theme
// name and tags of those that loaded.
func writeList(w io.Writer, infos []eui.PaletteInfo, lib *eui.Library) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tTheme\tSource\tSize\tTags")
	for _, p := range infos {
		src := p.Path
		if p.Embedded {
			src = "built-in"
		}
		title, tags := "-", "(failed to load)"
		if t, ok := lib.Get(p.Name); ok {
			title, tags = t.Name, strings.Join(t.Tags, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Name, title, src, humanize.Bytes(uint64(p.Size)), tags)
	}
	return tw.Flush()
}

// resolveSelector resolves one selector string against t for -resolve.
func resolveSelector(t *eui.Theme, s string) (string, error) {
	sel, err := eui.ParseThemeColor(s)
	if err != nil {
		return "", err
	}
	if _, err := sel.Lookup(t); err != nil {
		logWarn("%v; resolving to the default", err)
	}
	return fmt.Sprintf("%s %s text=%s", sel, sel.Resolve(t).Hex(), sel.ResolveText(t).Hex()), nil
}
