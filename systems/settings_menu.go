package systems

import (
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
)

// CycleQuality moves the display quality one step, wrapping at either end.
func CycleQuality(s *components.SettingsData, delta int) {
	qualities := cfg.SettingsMenu.Qualities
	n := len(qualities)
	if n == 0 {
		return
	}
	idx := 0
	for i, q := range qualities {
		if q == s.Quality {
			idx = i
			break
		}
	}
	s.Quality = qualities[((idx+delta)%n+n)%n]
}

// AdjustVolume changes the volume step and clamps it to the allowed range.
func AdjustVolume(s *components.SettingsData, delta int) {
	s.Volume += delta
	s.Normalize()
}
