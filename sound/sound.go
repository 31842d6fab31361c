package sound

import (
	"sync"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	audioContext *audio.Context
	sfxCache     = map[cfg.SoundID][]byte{}
	volume       = cfg.VolumeFraction(cfg.SettingsMenu.DefaultVolume)
	initOnce     sync.Once
)

func initAudio() {
	initOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// Preload renders every configured effect so the first play has no delay.
func Preload() {
	initAudio()
	for id, tone := range cfg.Audio.Tones {
		sfxCache[id] = Synth(cfg.Audio.SampleRate, tone)
	}
}

// SetVolume takes a settings volume step.
func SetVolume(step int) {
	volume = cfg.VolumeFraction(step)
}

// Play starts every queued effect.
func Play(ids []cfg.SoundID) {
	if volume <= 0 || len(ids) == 0 {
		return
	}
	initAudio()
	for _, id := range ids {
		pcm, ok := sfxCache[id]
		if !ok {
			tone, known := cfg.Audio.Tones[id]
			if !known {
				continue
			}
			pcm = Synth(cfg.Audio.SampleRate, tone)
			sfxCache[id] = pcm
		}
		if len(pcm) == 0 {
			continue
		}
		player := audioContext.NewPlayerFromBytes(pcm)
		player.SetVolume(volume)
		player.Play()
	}
}
