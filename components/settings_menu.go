package components

import (
	cfg "github.com/automoto/glowswarm/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the player's display and audio preferences.
type SettingsData struct {
	Quality cfg.DisplayQuality
	Volume  int // 0..cfg.SettingsMenu.MaxVolume
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() SettingsData {
	return SettingsData{
		Quality: cfg.SettingsMenu.DefaultQuality,
		Volume:  cfg.SettingsMenu.DefaultVolume,
	}
}

// Normalize clamps out-of-range values loaded from disk.
func (s *SettingsData) Normalize() {
	if s.Quality < cfg.QualityLow || s.Quality > cfg.QualityHigh {
		s.Quality = cfg.SettingsMenu.DefaultQuality
	}
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > cfg.SettingsMenu.MaxVolume {
		s.Volume = cfg.SettingsMenu.MaxVolume
	}
}

var Settings = donburi.NewComponentType[SettingsData]()
