package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives an alpha tween for overlays and the splash card.
type FadeData struct {
	Tween    *gween.Tween
	Alpha    float32
	Finished bool
}

// Step advances the tween by dt seconds.
func (f *FadeData) Step(dt float32) {
	if f.Tween == nil || f.Finished {
		return
	}
	f.Alpha, f.Finished = f.Tween.Update(dt)
}

var Fade = donburi.NewComponentType[FadeData]()
