package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const SETTINGS_VERSION = 1

const settingsFile = "settings.json"

type settings struct {
	Version int

	Theme        string
	UIScale      float32
	WindowWidth  int
	WindowHeight int
}

var gsdef = settings{
	Version:      SETTINGS_VERSION,
	UIScale:      1,
	WindowWidth:  initialWindowW,
	WindowHeight: initialWindowH,
}

var gs settings = gsdef

// settingsDir is where settings.json lives; tests point it at a temp dir.
var settingsDir = "."

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

// settingsDirty marks in-memory changes that still need saving.
var settingsDirty bool

func loadSettings() bool {
	path := filepath.Join(settingsDir, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("settings: %v", err)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		gs = gsdef
		settingsLoaded = false
		return false
	}
	gs = tmp
	if gs.UIScale <= 0 {
		gs.UIScale = 1
	}
	settingsLoaded = true
	return true
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(settingsDir, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save settings: %v", err)
		return
	}
	settingsDirty = false
}
