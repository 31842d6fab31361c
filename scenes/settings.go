package scenes

import (
	"sync"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

const settingsRows = 2

// SettingsScene edits display quality and volume. It is shown while the
// machine is in Menu.
type SettingsScene struct {
	director     *Director
	settingsUI   *ui.SettingsUI
	row          int
	once         sync.Once
	shouldGoBack bool
}

func NewSettingsScene(d *Director) *SettingsScene {
	return &SettingsScene{director: d}
}

func (s *SettingsScene) Update() {
	s.once.Do(s.configure)
	in := &s.director.input

	switch {
	case in.JustPressed(cfg.ActionMenuBack), in.JustPressed(cfg.ActionPause):
		s.shouldGoBack = true
	case in.JustPressed(cfg.ActionMenuUp):
		s.row = (s.row - 1 + settingsRows) % settingsRows
	case in.JustPressed(cfg.ActionMenuDown):
		s.row = (s.row + 1) % settingsRows
	case in.JustPressed(cfg.ActionMoveLeft):
		s.settingsUI.Step(s.row, -1)
	case in.JustPressed(cfg.ActionMoveRight):
		s.settingsUI.Step(s.row, 1)
	}

	s.settingsUI.Update()

	if s.shouldGoBack {
		s.director.ChangeScene(NewMenuScene(s.director))
	}
}

func (s *SettingsScene) Draw(screen *ebiten.Image) {
	if s.settingsUI == nil {
		screen.Fill(cfg.Menu.BackgroundColor)
		return
	}
	s.settingsUI.UI.Draw(screen)
}

func (s *SettingsScene) configure() {
	s.settingsUI = ui.NewSettingsUI(
		s.director.Settings(),
		s.director.ApplySettings,
		func() { s.shouldGoBack = true },
	)
}
