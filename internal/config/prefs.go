package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the viewer preferences file, relative to the process working directory.
const PrefsPath = "config/prefs.json"

// Prefs holds viewer-only preferences (debug overlays, floor grid). Persisted across runs.
// Camera state is deliberately not persisted; every session starts at the default view.
type Prefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	GridVisible  bool `json:"grid_visible"`
}

// DefaultPrefs returns default preferences (overlays off, grid on).
func DefaultPrefs() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
	}
}

// LoadPrefs reads preferences from config/prefs.json. If the file is missing or invalid,
// returns DefaultPrefs() and does not create a file.
func LoadPrefs() (Prefs, error) {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return DefaultPrefs(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), nil
	}
	return p, nil
}

// SavePrefs writes preferences to config/prefs.json, creating the config directory if needed.
func SavePrefs(p Prefs) error {
	dir := filepath.Dir(PrefsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
