package main

import (
	"log"

	"themekit/eui"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelFontSize   = 12
	headingFontSize = 18
)

// initFont registers the Go fonts under the handle names palettes use by
// default.
func initFont() {
	if _, err := eui.Fonts.RegisterTTF(eui.FontBaseName, goregular.TTF); err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	if _, err := eui.Fonts.RegisterTTF(eui.FontHeadingName, gobold.TTF); err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
}
