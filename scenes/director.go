package scenes

import (
	"log"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/input"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/sound"
	"github.com/automoto/glowswarm/state"
	"github.com/automoto/glowswarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// sessionScene is implemented by scenes that run a session.
type sessionScene interface {
	Session() *session.Session
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Director implements ebiten.Game. It owns the state machine and swaps
// scenes when the machine enters a state with its own screen.
type Director struct {
	Machine *state.Machine

	scene    Scene
	input    components.InputData
	settings components.SettingsData
	quit     bool
}

// NewDirector creates the game, starting on the splash card unless
// cfg.Debug.SkipSplash is set.
func NewDirector(settings components.SettingsData) *Director {
	initial := cfg.StateSplash
	if cfg.Debug.SkipSplash {
		initial = cfg.StateMenu
	}

	d := &Director{
		Machine:  state.New(initial),
		settings: settings,
	}
	d.installHooks()
	sound.SetVolume(settings.Volume)

	if initial == cfg.StateSplash {
		d.scene = NewSplashScene(d)
	} else {
		d.scene = NewMenuScene(d)
	}
	return d
}

func (d *Director) installHooks() {
	systems.InstallEndScreenHooks(d.Machine, d.currentSession)

	d.Machine.OnEnter(cfg.StateMenu, func(_, _ cfg.GameState) {
		d.ChangeScene(NewMenuScene(d))
	})
	d.Machine.OnEnter(cfg.StateGame, func(from, _ cfg.GameState) {
		// resuming from pause keeps the running arena
		if from == cfg.StateMenu {
			d.ChangeScene(NewArenaScene(d))
		}
	})
	d.Machine.OnEnter(cfg.StateLost, func(_, _ cfg.GameState) {
		s := d.currentSession()
		if s == nil {
			return
		}
		if systems.RecordRun(s.Stats.Survived, s.Stats.Waves) {
			log.Printf("New best: %.1fs over %d waves", s.Stats.Survived, s.Stats.Waves)
		}
	})
}

// ChangeScene switches to a new scene
func (d *Director) ChangeScene(scene Scene) {
	d.scene = scene
}

// Settings returns the active preferences.
func (d *Director) Settings() components.SettingsData {
	return d.settings
}

// ApplySettings makes new preferences current and saves them.
func (d *Director) ApplySettings(settings components.SettingsData) {
	d.settings = settings
	sound.SetVolume(settings.Volume)
	_ = systems.SaveSettings(settings)
}

// Quit ends the game after the current frame.
func (d *Director) Quit() {
	d.quit = true
}

func (d *Director) currentSession() *session.Session {
	if owner, ok := d.scene.(sessionScene); ok {
		return owner.Session()
	}
	return nil
}

// bind copies this frame's input into s. The input is polled once per frame
// by the director so held keys do not read as fresh presses in a new scene.
func (d *Director) bind(s *session.Session) {
	s.Input = d.input
}

func (d *Director) Update() error {
	if d.quit {
		return ebiten.Termination
	}
	input.Poll(&d.input)
	d.scene.Update()
	if d.quit {
		return ebiten.Termination
	}
	return nil
}

func (d *Director) Draw(screen *ebiten.Image) {
	d.scene.Draw(screen)
}

func (d *Director) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
