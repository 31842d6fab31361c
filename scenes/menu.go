package scenes

import (
	"sync"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/render"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/sound"
	"github.com/automoto/glowswarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs      *ecs.ECS
	session  *session.Session
	director *Director
	once     sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(d *Director) *MenuScene {
	return &MenuScene{director: d}
}

func (ms *MenuScene) Session() *session.Session {
	return ms.session
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.director.bind(ms.session)
	ms.ecs.Update()
	sound.Play(ms.session.DrainSounds())
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// OpenSettings shows the settings screen; the machine stays in Menu.
func (ms *MenuScene) OpenSettings() {
	ms.director.ChangeScene(NewSettingsScene(ms.director))
}

func (ms *MenuScene) Quit() {
	ms.director.Quit()
}

func (ms *MenuScene) configure() {
	ms.session = session.New(ms.director.Machine, cfg.Debug.Seed)
	systems.GetOrCreateMenu(ms.session).BestSeconds = systems.LoadBest().Seconds

	schedule := systems.NewSchedule().Add(systems.NewUpdateMenu(ms), cfg.StateMenu)

	ms.ecs = ecs.NewECS(ms.session.World)
	ms.ecs.AddSystem(func(_ *ecs.ECS) { schedule.Tick(ms.session) })
	ms.ecs.AddRenderer(render.LayerArena, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.DrawMenu(ms.session, screen)
	})
}
