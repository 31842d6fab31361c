package systems

import (
	"github.com/automoto/glowswarm/archetypes"
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/tags"
	"github.com/yohamta/donburi/features/math"
)

// SpawnPlayer creates the single player of a run at the configured start.
func SpawnPlayer(s *session.Session) error {
	if _, ok := s.Player(); ok {
		return session.ErrPlayerExists
	}

	player := archetypes.Player.Spawn(s.World)
	components.Transform.SetValue(player, components.TransformData{
		Position: math.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY},
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed: cfg.Player.Speed,
		Size:  cfg.Player.Size,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	// One unit of slack so every centre inside the contact radius shares a cell.
	s.Attach(player, cfg.Player.Size+1, tags.ResolvPlayer)

	return s.SetPlayer(player.Entity())
}

// MovePlayer applies held direction keys and keeps the player inside the arena.
// Diagonals are not normalised.
func MovePlayer(s *session.Session) {
	entry, ok := s.Player()
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	transform := components.Transform.Get(entry)

	var dx, dy float64
	if s.Input.Held(cfg.ActionMoveLeft) {
		dx -= 1
	}
	if s.Input.Held(cfg.ActionMoveRight) {
		dx += 1
	}
	if s.Input.Held(cfg.ActionMoveUp) {
		dy += 1
	}
	if s.Input.Held(cfg.ActionMoveDown) {
		dy -= 1
	}

	pos := transform.Position
	pos.X += dx * player.Speed * s.Delta
	pos.Y += dy * player.Speed * s.Delta

	half := player.Size / 2
	pos.X = clamp(pos.X, cfg.Arena.Left+half, cfg.Arena.Right-half)
	pos.Y = clamp(pos.Y, cfg.Arena.Bottom+half, cfg.Arena.Top-half)
	transform.Position = pos

	s.Sync(entry)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
