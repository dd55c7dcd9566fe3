package eui

import (
	"log"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Watcher reloads a palette from disk when its file changes. Only use this
// for quickly iterating when designing your own palettes.
type Watcher struct {
	dir     string
	name    string
	path    string
	modTime time.Time
	limiter *rate.Limiter

	// OnReload, if set, runs after a changed palette has been applied.
	OnReload func(*Theme)
}

// NewWatcher watches the on-disk file backing the named palette. Embedded
// palettes have no file and are never reloaded.
func NewWatcher(dir, name string) *Watcher {
	w := &Watcher{
		dir:     dir,
		name:    name,
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	if info, err := findPalette(dir, name); err == nil && !info.Embedded {
		w.path = info.Path
		if fi, err := os.Stat(w.path); err == nil {
			w.modTime = fi.ModTime()
		}
	}
	return w
}

// Check polls the file and reloads it if it changed. It is cheap to call
// every frame; the file is only stat'ed twice a second.
func (w *Watcher) Check() bool {
	if w.path == "" || !w.limiter.Allow() {
		return false
	}
	fi, err := os.Stat(w.path)
	if err != nil {
		log.Printf("Unable to stat %s: %v", w.path, err)
		return false
	}
	if !fi.ModTime().After(w.modTime) {
		return false
	}
	w.modTime = fi.ModTime()
	log.Println("Palette reload")
	t, err := ApplyPalette(w.dir, w.name)
	if err != nil {
		log.Printf("Auto reload palette error: %v", err)
		return false
	}
	if w.OnReload != nil {
		w.OnReload(t)
	}
	return true
}
