package session

import (
	"errors"
	"testing"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/state"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func newTestSession() *Session {
	return New(state.New(cfg.StateGame), 42)
}

func spawnAt(s *Session, x, y float64) *donburi.Entry {
	entry := s.World.Entry(s.World.Create(components.Transform, components.Object))
	components.Transform.SetValue(entry, components.TransformData{Position: math.Vec2{X: x, Y: y}})
	s.Attach(entry, 10, "Enemy")
	return entry
}

func TestWaveTimerTick(t *testing.T) {
	tests := []struct {
		name   string
		period float64
		steps  []float64
		want   []int
	}{
		{"under period", 1, []float64{0.5}, []int{0}},
		{"exact period", 1, []float64{1}, []int{1}},
		{"accumulates", 1, []float64{0.6, 0.6, 0.6}, []int{0, 1, 0}},
		{"multiple completions", 1, []float64{2.5}, []int{2}},
		{"zero dt", 1, []float64{0}, []int{0}},
		{"disabled", 0, []float64{5}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewWaveTimer(tt.period)
			for i, dt := range tt.steps {
				if got := timer.Tick(dt); got != tt.want[i] {
					t.Errorf("Expected step %d completions = %d, got %d", i, tt.want[i], got)
				}
			}
		})
	}
}

func TestWaveTimerSixtyTicks(t *testing.T) {
	timer := NewWaveTimer(1)
	total := 0
	for i := 0; i < 120; i++ {
		total += timer.Tick(1.0 / 64)
	}
	// 120/64 s = 1.875 s
	if total != 1 {
		t.Errorf("Expected 1 completion, got %d", total)
	}
}

func TestSetPlayerRejectsSecond(t *testing.T) {
	s := newTestSession()
	if _, ok := s.Player(); ok {
		t.Fatal("Expected no player in a fresh session")
	}

	first := s.World.Create(components.Transform)
	if err := s.SetPlayer(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := s.World.Create(components.Transform)
	if err := s.SetPlayer(second); !errors.Is(err, ErrPlayerExists) {
		t.Errorf("Expected ErrPlayerExists, got %v", err)
	}

	entry, ok := s.Player()
	if !ok || entry.Entity() != first {
		t.Errorf("Expected the first player to be kept")
	}
}

func TestFlushDespawnsThenSpawns(t *testing.T) {
	s := newTestSession()
	a := spawnAt(s, 0, 0)
	b := spawnAt(s, 200, 200)
	aObj := components.Object.Get(a).Object

	spawned := 0
	s.Commands.Spawn(func(s *Session) {
		if s.World.Valid(a.Entity()) {
			t.Error("Expected despawn to run before spawn callbacks")
		}
		spawned++
	})
	s.Commands.Despawn(a.Entity())
	s.Commands.Despawn(a.Entity())

	if s.Commands.Len() != 3 {
		t.Errorf("Expected 3 queued commands, got %d", s.Commands.Len())
	}

	s.Flush()

	if s.Commands.Len() != 0 {
		t.Errorf("Expected empty queue after flush, got %d", s.Commands.Len())
	}
	if spawned != 1 {
		t.Errorf("Expected 1 spawn callback, got %d", spawned)
	}
	if s.World.Valid(a.Entity()) {
		t.Error("Expected entity a to be removed")
	}
	if !s.World.Valid(b.Entity()) {
		t.Error("Expected entity b to survive")
	}
	probe := resolv.NewObject(aObj.X, aObj.Y, 20, 20)
	s.Space.Add(probe)
	if check := probe.Check(0, 0, "Enemy"); check != nil {
		t.Errorf("Expected removed object to leave the space, got %d objects", len(check.Objects))
	}
}

func TestFlushIgnoresInvalidEntity(t *testing.T) {
	s := newTestSession()
	a := spawnAt(s, 0, 0)
	e := a.Entity()
	s.Commands.Despawn(e)
	s.Flush()

	s.Commands.Despawn(e)
	s.Flush()

	if s.World.Len() != 0 {
		t.Errorf("Expected empty world, got %d entities", s.World.Len())
	}
}

func TestFlushClearsPlayerHandle(t *testing.T) {
	s := newTestSession()
	p := spawnAt(s, 0, 0)
	if err := s.SetPlayer(p.Entity()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Commands.Despawn(p.Entity())
	s.Flush()

	if _, ok := s.Player(); ok {
		t.Error("Expected no player after despawn")
	}
}

func TestSyncMovesObject(t *testing.T) {
	s := newTestSession()
	entry := spawnAt(s, 0, 0)
	obj := components.Object.Get(entry).Object
	x0, y0 := obj.X, obj.Y

	components.Transform.Get(entry).Position = math.Vec2{X: 10, Y: 20}
	s.Sync(entry)

	if obj.X != x0+10 {
		t.Errorf("Expected object X = %v, got %v", x0+10, obj.X)
	}
	// world y is up, space y is down
	if obj.Y != y0-20 {
		t.Errorf("Expected object Y = %v, got %v", y0-20, obj.Y)
	}
}

func TestUniformPointInsideArena(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 1000; i++ {
		p := s.Sample(cfg.Arena)
		if p.X < cfg.Arena.Left || p.X >= cfg.Arena.Right || p.Y < cfg.Arena.Bottom || p.Y >= cfg.Arena.Top {
			t.Fatalf("Expected point inside arena, got %+v", p)
		}
	}
}

func TestDrainSounds(t *testing.T) {
	s := newTestSession()
	s.PlaySound(cfg.SoundHit)
	s.PlaySound(cfg.SoundLose)
	got := s.DrainSounds()
	if len(got) != 2 || got[0] != cfg.SoundHit || got[1] != cfg.SoundLose {
		t.Errorf("Expected [hit lose], got %v", got)
	}
	if len(s.DrainSounds()) != 0 {
		t.Error("Expected sound queue to be empty after drain")
	}
}
