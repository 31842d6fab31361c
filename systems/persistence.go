package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	bestKey     = "best"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Quality int `json:"quality"`
	Volume  int `json:"volume"`
}

// SavedBest is the longest survival stored on disk
type SavedBest struct {
	Seconds float64 `json:"seconds"`
	Waves   int     `json:"waves"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "glowswarm",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk, falling back to defaults.
func LoadSettings() components.SettingsData {
	settings := components.DefaultSettings()
	if !gdataInitialized || gdataManager == nil {
		return settings
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return settings
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return settings
	}
	settings.Quality = cfg.DisplayQuality(saved.Quality)
	settings.Volume = saved.Volume
	settings.Normalize()
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s components.SettingsData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedSettings{Quality: int(s.Quality), Volume: s.Volume})
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// LoadBest returns the stored best run, or a zero value.
func LoadBest() SavedBest {
	if !gdataInitialized || gdataManager == nil {
		return SavedBest{}
	}

	data, err := gdataManager.LoadItem(bestKey)
	if err != nil {
		log.Printf("Warning: Could not load best time: %v", err)
		return SavedBest{}
	}
	if len(data) == 0 {
		return SavedBest{}
	}

	var best SavedBest
	if err := json.Unmarshal(data, &best); err != nil {
		log.Printf("Warning: Could not parse best time: %v", err)
		return SavedBest{}
	}
	return best
}

// RecordRun stores the run if it beats the saved best and reports whether it did.
func RecordRun(seconds float64, waves int) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}
	if seconds <= LoadBest().Seconds {
		return false
	}

	data, err := json.Marshal(SavedBest{Seconds: seconds, Waves: waves})
	if err != nil {
		log.Printf("Warning: Could not serialize best time: %v", err)
		return false
	}
	if err := gdataManager.SaveItem(bestKey, data); err != nil {
		log.Printf("Warning: Could not save best time: %v", err)
		return false
	}
	return true
}
