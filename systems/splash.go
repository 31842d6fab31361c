package systems

import (
	"github.com/automoto/glowswarm/archetypes"
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GetOrCreateSplash returns the splash card state, creating it on first use.
func GetOrCreateSplash(s *session.Session) (*components.SplashData, *components.FadeData) {
	entry, ok := components.Splash.First(s.World)
	if !ok {
		entry = archetypes.Splash.Spawn(s.World)
		components.Fade.SetValue(entry, components.FadeData{
			Tween: gween.New(0, 1, float32(cfg.Splash.Duration), ease.InOutQuad),
		})
	}
	return components.Splash.Get(entry), components.Fade.Get(entry)
}

// UpdateSplash fades the title card in and moves on to the menu when the
// fade completes or a key is pressed.
func UpdateSplash(s *session.Session) {
	splash, fade := GetOrCreateSplash(s)
	splash.Elapsed += s.Delta
	fade.Step(float32(s.Delta))

	skip := cfg.Splash.SkipOnKey && s.Input.AnyJustPressed
	if fade.Finished || skip {
		_ = s.State.Set(cfg.StateMenu)
	}
}
