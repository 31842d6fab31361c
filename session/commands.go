package session

import "github.com/yohamta/donburi"

// Commands collects structural world changes requested during a tick so that
// systems never mutate the set of entities they are iterating.
type Commands struct {
	despawn []donburi.Entity
	spawn   []func(*Session)
}

// Spawn queues a callback that creates entities at the next flush.
func (c *Commands) Spawn(fn func(*Session)) {
	c.spawn = append(c.spawn, fn)
}

// Despawn queues an entity for removal at the next flush.
func (c *Commands) Despawn(e donburi.Entity) {
	c.despawn = append(c.despawn, e)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.despawn) + len(c.spawn)
}

func (c *Commands) take() ([]donburi.Entity, []func(*Session)) {
	d, s := c.despawn, c.spawn
	c.despawn, c.spawn = nil, nil
	return d, s
}
