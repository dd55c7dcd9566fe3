package eui

import (
	_ "embed"
	"errors"
	"log"
	"os"
	"path/filepath"
)

//go:embed themes/README.md
var paletteReadme []byte

// EnsurePaletteDocs seeds dir with a README and an example palette so users
// have something to copy when writing their own.
func EnsurePaletteDocs(dir string) {
	readme := filepath.Join(dir, "README.md")
	if _, err := os.Stat(readme); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, 0755); err == nil {
			if err := os.WriteFile(readme, paletteReadme, 0644); err != nil {
				log.Printf("write palette README: %v", err)
			}
		}
	}

	example := filepath.Join(dir, "Example.json.sample")
	if _, err := os.Stat(example); errors.Is(err, os.ErrNotExist) {
		if data, err := embeddedPalettes.ReadFile("themes/Dark.json"); err == nil {
			if err := os.MkdirAll(dir, 0755); err == nil {
				if err := os.WriteFile(example, data, 0644); err != nil {
					log.Printf("write example palette: %v", err)
				}
			}
		}
	}
}
