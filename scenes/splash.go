package scenes

import (
	"sync"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/render"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SplashScene shows the title card before the menu
type SplashScene struct {
	ecs      *ecs.ECS
	session  *session.Session
	director *Director
	once     sync.Once
}

func NewSplashScene(d *Director) *SplashScene {
	return &SplashScene{director: d}
}

func (ss *SplashScene) Session() *session.Session {
	return ss.session
}

func (ss *SplashScene) Update() {
	ss.once.Do(ss.configure)
	ss.director.bind(ss.session)
	ss.ecs.Update()
}

func (ss *SplashScene) Draw(screen *ebiten.Image) {
	if ss.ecs == nil {
		screen.Fill(cfg.Menu.BackgroundColor)
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SplashScene) configure() {
	ss.session = session.New(ss.director.Machine, cfg.Debug.Seed)
	schedule := systems.NewSchedule().Add(systems.UpdateSplash, cfg.StateSplash)

	ss.ecs = ecs.NewECS(ss.session.World)
	ss.ecs.AddSystem(func(_ *ecs.ECS) { schedule.Tick(ss.session) })
	ss.ecs.AddRenderer(render.LayerArena, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.DrawSplash(ss.session, screen)
	})
}
