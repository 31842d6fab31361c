package systems

import (
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/tags"
	"github.com/yohamta/donburi"
)

// ResolveContacts despawns every enemy whose centre lies strictly inside the
// player's radius and removes the combined damage from the player in one step.
func ResolveContacts(s *session.Session) {
	playerEntry, ok := s.Player()
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	origin := components.Transform.Get(playerEntry).Position
	obj := components.Object.Get(playerEntry).Object

	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	hits := 0
	seen := make(map[donburi.Entity]struct{})
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		e, ok := o.Data.(donburi.Entity)
		if !ok || !s.World.Valid(e) {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}

		entry := s.World.Entry(e)
		if distance(components.Transform.Get(entry).Position, origin) >= player.Size {
			continue
		}
		hits++
		s.Commands.Despawn(e)
	}

	if hits == 0 {
		return
	}
	components.Health.Get(playerEntry).Damage(hits * cfg.Enemy.Damage)
	s.Stats.Hits += hits
	s.PlaySound(cfg.SoundHit)
}
