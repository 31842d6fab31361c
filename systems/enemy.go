package systems

import (
	gomath "math"

	"github.com/automoto/glowswarm/archetypes"
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MoveEnemies closes a fixed fraction of each enemy's gap to the player per
// second, so enemies slow down as they get near.
func MoveEnemies(s *session.Session) {
	playerEntry, ok := s.Player()
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position

	tags.Enemy.Each(s.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		transform := components.Transform.Get(entry)

		step := enemy.Speed * s.Delta
		transform.Position.X += step * (target.X - transform.Position.X)
		transform.Position.Y += step * (target.Y - transform.Position.Y)

		s.Sync(entry)
	})
}

// SpawnWave draws a batch of spawn candidates each time the wave timer
// completes and queues an enemy for every candidate far enough from the
// player. Several completions in one tick still produce a single batch.
func SpawnWave(s *session.Session) {
	if s.Waves.Tick(s.Delta) == 0 {
		return
	}
	playerEntry, ok := s.Player()
	if !ok {
		return
	}
	origin := components.Transform.Get(playerEntry).Position

	s.Stats.Waves++
	wave := s.Stats.Waves

	for i := 0; i < cfg.Wave.SpawnPerWave; i++ {
		p := s.Sample(cfg.Arena)
		if distance(p, origin) <= cfg.Wave.MinSpawnDistance {
			continue
		}
		s.Commands.Spawn(func(s *session.Session) {
			spawnEnemy(s, p, wave)
		})
	}
}

func spawnEnemy(s *session.Session, at math.Vec2, wave int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(s.World)
	components.Transform.SetValue(enemy, components.TransformData{Position: at})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed: cfg.Enemy.Speed,
		Size:  cfg.Enemy.Size,
		Wave:  wave,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	s.Attach(enemy, cfg.Enemy.Size, tags.ResolvEnemy)
	s.Stats.Spawned++
	return enemy
}

func distance(a, b math.Vec2) float64 {
	return gomath.Hypot(a.X-b.X, a.Y-b.Y)
}
