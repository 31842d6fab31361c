package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/render"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/sound"
	"github.com/automoto/glowswarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one round: Game, Paused and the end screen all draw here.
type ArenaScene struct {
	ecs       *ecs.ECS
	session   *session.Session
	director  *Director
	bloom     *render.Bloom
	endScreen *render.EndScreen
	once      sync.Once
}

// NewArenaScene creates a fresh run with the player already spawned, so the
// end screen hooks always find a session.
func NewArenaScene(d *Director) *ArenaScene {
	as := &ArenaScene{director: d}
	as.once.Do(as.configure)
	return as
}

func (as *ArenaScene) Session() *session.Session {
	return as.session
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.director.bind(as.session)
	as.ecs.Update()
	sound.Play(as.session.DrainSounds())
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.bloom.Quality = as.director.Settings().Quality
	as.ecs.DrawLayer(render.LayerArena, as.bloom.Target(screen))
	as.bloom.Present(screen)
	as.ecs.DrawLayer(render.LayerHUD, screen)
	as.ecs.DrawLayer(render.LayerOverlay, screen)
}

func (as *ArenaScene) configure() {
	as.session = session.New(as.director.Machine, cfg.Debug.Seed)
	if err := systems.SpawnPlayer(as.session); err != nil {
		log.Printf("Warning: Could not spawn player: %v", err)
	}

	as.bloom = render.NewBloom(as.director.Settings().Quality)
	as.endScreen = render.NewEndScreen()
	schedule := systems.NewArenaSchedule()

	as.ecs = ecs.NewECS(as.session.World)
	as.ecs.AddSystem(func(_ *ecs.ECS) { schedule.Tick(as.session) })

	as.ecs.AddRenderer(render.LayerArena, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.DrawArena(as.session, screen)
	})
	as.ecs.AddRenderer(render.LayerHUD, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.DrawHUD(as.session, screen)
	})
	as.ecs.AddRenderer(render.LayerOverlay, func(_ *ecs.ECS, screen *ebiten.Image) {
		if as.session.State.In(cfg.StatePaused) {
			render.DrawPause(screen)
		}
	})
	as.ecs.AddRenderer(render.LayerOverlay, func(_ *ecs.ECS, screen *ebiten.Image) {
		as.endScreen.Draw(as.session, screen)
	})
}
