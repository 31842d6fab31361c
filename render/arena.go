package render

import (
	"image/color"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DrawArena renders the floor, walls, enemies and the player.
func DrawArena(s *session.Session, screen *ebiten.Image) {
	screen.Fill(color.Black)

	x0, y0 := ToScreen(math.Vec2{X: cfg.Arena.Left, Y: cfg.Arena.Top})
	w, h := float32(cfg.Arena.Width()), float32(cfg.Arena.Height())
	vector.FillRect(screen, x0, y0, w, h, cfg.Arena.FloorColor, false)
	vector.StrokeRect(screen, x0, y0, w, h, 3, cfg.Arena.WallColor, false)

	tags.Enemy.Each(s.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		drawGlowCircle(screen, components.Transform.Get(entry).Position, enemy.Size, cfg.Enemy.Color)
	})

	if entry, ok := s.Player(); ok {
		player := components.Player.Get(entry)
		drawGlowCircle(screen, components.Transform.Get(entry).Position, player.Size, cfg.Player.Color)
	}
}

func drawGlowCircle(screen *ebiten.Image, p math.Vec2, radius float64, clr color.RGBA) {
	x, y := ToScreen(p)
	halo := withAlpha(clr, 0.18)
	vector.FillCircle(screen, x, y, float32(radius*cfg.Bloom.HaloScale), halo, true)
	vector.FillCircle(screen, x, y, float32(radius), clr, true)
}
