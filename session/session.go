package session

import (
	"errors"
	"math/rand"
	"time"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/state"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ErrPlayerExists is returned when a second player is spawned into a session.
var ErrPlayerExists = errors.New("player already exists")

const (
	// spaceMargin keeps objects that poke past the arena edge inside the grid.
	spaceMargin = 64
	spaceCell   = 32
)

// Stats tracks a single run.
type Stats struct {
	Waves    int
	Spawned  int
	Hits     int
	Survived float64 // seconds spent in Game
}

// Session owns everything one run of the arena mutates.
type Session struct {
	World donburi.World
	Space *resolv.Space
	State *state.Machine

	// Input is the snapshot systems read this tick.
	Input components.InputData
	Delta float64

	Waves    *WaveTimer
	Rand     *rand.Rand
	Sample   func(arena cfg.ArenaConfig) math.Vec2
	Commands Commands
	Stats    Stats
	Sounds   []cfg.SoundID

	player    donburi.Entity
	hasPlayer bool
}

// New creates an empty session sharing the given state machine.
// A zero seed picks a time based one.
func New(machine *state.Machine, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		World: donburi.NewWorld(),
		Space: resolv.NewSpace(
			int(cfg.Arena.Width())+2*spaceMargin,
			int(cfg.Arena.Height())+2*spaceMargin,
			spaceCell, spaceCell,
		),
		State: machine,
		Delta: 1.0 / float64(cfg.C.TPS),
		Waves: NewWaveTimer(cfg.Wave.IntervalSeconds),
		Rand:  rand.New(rand.NewSource(seed)),
	}
	s.Sample = s.uniformPoint
	return s
}

// uniformPoint draws a point uniformly inside the arena rectangle.
func (s *Session) uniformPoint(arena cfg.ArenaConfig) math.Vec2 {
	return math.Vec2{
		X: arena.Left + s.Rand.Float64()*arena.Width(),
		Y: arena.Bottom + s.Rand.Float64()*arena.Height(),
	}
}

// Player returns the player entry when one is alive in the world.
func (s *Session) Player() (*donburi.Entry, bool) {
	if !s.hasPlayer || !s.World.Valid(s.player) {
		return nil, false
	}
	return s.World.Entry(s.player), true
}

// SetPlayer records the player entity. It fails if a live player is already set.
func (s *Session) SetPlayer(e donburi.Entity) error {
	if _, ok := s.Player(); ok {
		return ErrPlayerExists
	}
	s.player = e
	s.hasPlayer = true
	return nil
}

// PlaySound queues a sound effect for the audio layer.
func (s *Session) PlaySound(id cfg.SoundID) {
	s.Sounds = append(s.Sounds, id)
}

// DrainSounds returns and clears the queued sound effects.
func (s *Session) DrainSounds() []cfg.SoundID {
	out := s.Sounds
	s.Sounds = nil
	return out
}

// Attach creates a square broadphase object of the given half extent centred
// on the entity's position and links it to the entry.
func (s *Session) Attach(entry *donburi.Entry, halfExtent float64, tag string) *resolv.Object {
	pos := components.Transform.Get(entry).Position
	x, y := toSpace(pos, halfExtent)
	obj := resolv.NewObject(x, y, halfExtent*2, halfExtent*2, tag)
	obj.Data = entry.Entity()
	s.Space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

// Sync moves the entry's broadphase object to its current position.
func (s *Session) Sync(entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}
	obj.X, obj.Y = toSpace(components.Transform.Get(entry).Position, obj.W/2)
	obj.Update()
}

// toSpace converts a world centre (y up, origin mid arena) into the top-left
// corner of a box in space coordinates (y down, origin at the grid corner).
func toSpace(p math.Vec2, halfExtent float64) (float64, float64) {
	x := p.X - cfg.Arena.Left + spaceMargin - halfExtent
	y := cfg.Arena.Top - p.Y + spaceMargin - halfExtent
	return x, y
}

// Flush applies queued commands: despawns first, then spawns. Spawn
// callbacks may queue more commands; those run in the same flush.
func (s *Session) Flush() {
	for s.Commands.Len() > 0 {
		despawns, spawns := s.Commands.take()

		seen := make(map[donburi.Entity]struct{}, len(despawns))
		for _, e := range despawns {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			s.remove(e)
		}

		for _, fn := range spawns {
			fn(s)
		}
	}
}

func (s *Session) remove(e donburi.Entity) {
	if !s.World.Valid(e) {
		return
	}
	entry := s.World.Entry(e)
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil {
			s.Space.Remove(obj)
		}
	}
	if s.hasPlayer && e == s.player {
		s.hasPlayer = false
	}
	s.World.Remove(e)
}
