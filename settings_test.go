package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withSettingsDir(t *testing.T) string {
	t.Helper()
	old, oldGS := settingsDir, gs
	settingsDir = t.TempDir()
	t.Cleanup(func() {
		settingsDir = old
		gs = oldGS
		settingsDirty = false
	})
	return settingsDir
}

func TestSettingsRoundTrip(t *testing.T) {
	dir := withSettingsDir(t)
	gs = gsdef
	gs.Theme = "Light"
	gs.UIScale = 1.5
	gs.WindowWidth = 1280
	settingsDirty = true
	saveSettings()
	if settingsDirty {
		t.Fatalf("save did not clear the dirty flag")
	}
	if _, err := os.Stat(filepath.Join(dir, settingsFile+".tmp")); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind")
	}

	gs = gsdef
	if !loadSettings() || !settingsLoaded {
		t.Fatalf("load failed")
	}
	if gs.Theme != "Light" || gs.UIScale != 1.5 || gs.WindowWidth != 1280 || gs.WindowHeight != initialWindowH {
		t.Fatalf("loaded %+v", gs)
	}
}

func TestSettingsMissingFile(t *testing.T) {
	withSettingsDir(t)
	gs.Theme = "stale"
	if loadSettings() {
		t.Fatalf("load succeeded without a file")
	}
	if gs != gsdef {
		t.Fatalf("settings not reset: %+v", gs)
	}
}

func TestSettingsVersionMismatch(t *testing.T) {
	dir := withSettingsDir(t)
	data := []byte(`{"Version": 99, "Theme": "Light"}`)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), data, 0644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatalf("loaded settings from another version")
	}
	if gs.Theme != "" {
		t.Fatalf("theme = %q", gs.Theme)
	}
}

func TestSettingsBadJSON(t *testing.T) {
	dir := withSettingsDir(t)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatalf("loaded broken settings")
	}
	if gs != gsdef {
		t.Fatalf("settings not reset: %+v", gs)
	}
}

func TestSettingsZeroScale(t *testing.T) {
	dir := withSettingsDir(t)
	data := []byte(`{"Version": 1, "UIScale": 0}`)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), data, 0644); err != nil {
		t.Fatal(err)
	}
	if !loadSettings() {
		t.Fatalf("load failed")
	}
	if gs.UIScale != 1 {
		t.Fatalf("scale = %v", gs.UIScale)
	}
}
