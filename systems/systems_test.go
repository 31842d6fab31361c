package systems

import (
	"errors"
	"image/color"
	gomath "math"
	"testing"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/state"
	"github.com/automoto/glowswarm/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func newTestSession(t *testing.T, initial cfg.GameState) *session.Session {
	t.Helper()
	return session.New(state.New(initial), 7)
}

func newGameSession(t *testing.T) (*session.Session, *donburi.Entry) {
	t.Helper()
	s := newTestSession(t, cfg.StateGame)
	if err := SpawnPlayer(s); err != nil {
		t.Fatalf("unexpected error spawning player: %v", err)
	}
	player, ok := s.Player()
	if !ok {
		t.Fatal("Expected player after SpawnPlayer")
	}
	return s, player
}

func press(s *session.Session, actions ...cfg.ActionID) {
	s.Input.Previous = [cfg.ActionCount]bool{}
	s.Input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		s.Input.Current[a] = true
	}
	s.Input.AnyJustPressed = len(actions) > 0
}

func release(s *session.Session) {
	s.Input = components.InputData{}
}

func countEnemies(s *session.Session) int {
	n := 0
	tags.Enemy.Each(s.World, func(*donburi.Entry) { n++ })
	return n
}

func countEndScreen(s *session.Session) (boxes, labels int) {
	tags.EndScreen.Each(s.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Overlay) {
			boxes++
		}
		if e.HasComponent(components.Label) {
			labels++
		}
	})
	return boxes, labels
}

func position(e *donburi.Entry) math.Vec2 {
	return components.Transform.Get(e).Position
}

func TestSpawnPlayer(t *testing.T) {
	s, player := newGameSession(t)

	if p := position(player); p.X != cfg.Player.StartX || p.Y != cfg.Player.StartY {
		t.Errorf("Expected player at (%v, %v), got %+v", cfg.Player.StartX, cfg.Player.StartY, p)
	}
	if hp := components.Health.Get(player).Current; hp != cfg.Player.Health {
		t.Errorf("Expected player health = %d, got %d", cfg.Player.Health, hp)
	}
	if err := SpawnPlayer(s); !errors.Is(err, session.ErrPlayerExists) {
		t.Errorf("Expected ErrPlayerExists on second spawn, got %v", err)
	}
	n := 0
	tags.Player.Each(s.World, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Errorf("Expected exactly 1 player entity, got %d", n)
	}
}

func TestMovePlayer(t *testing.T) {
	step := cfg.Player.Speed / float64(cfg.C.TPS)
	tests := []struct {
		name    string
		actions []cfg.ActionID
		wantDX  float64
		wantDY  float64
	}{
		{"idle", nil, 0, 0},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, -step, 0},
		{"up is positive y", []cfg.ActionID{cfg.ActionMoveUp}, 0, step},
		{"down", []cfg.ActionID{cfg.ActionMoveDown}, 0, -step},
		{"diagonal is not normalised", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight}, step, step},
		{"opposites cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, player := newGameSession(t)
			start := position(player)
			press(s, tt.actions...)
			MovePlayer(s)

			got := position(player)
			if gomath.Abs(got.X-start.X-tt.wantDX) > 1e-9 || gomath.Abs(got.Y-start.Y-tt.wantDY) > 1e-9 {
				t.Errorf("Expected delta (%v, %v), got (%v, %v)", tt.wantDX, tt.wantDY, got.X-start.X, got.Y-start.Y)
			}
		})
	}
}

func TestMovePlayerClamps(t *testing.T) {
	half := cfg.Player.Size / 2
	minX, maxX := cfg.Arena.Left+half, cfg.Arena.Right-half
	minY, maxY := cfg.Arena.Bottom+half, cfg.Arena.Top-half

	combos := [][]cfg.ActionID{
		{cfg.ActionMoveLeft},
		{cfg.ActionMoveRight},
		{cfg.ActionMoveUp},
		{cfg.ActionMoveDown},
		{cfg.ActionMoveUp, cfg.ActionMoveLeft},
		{cfg.ActionMoveDown, cfg.ActionMoveRight},
	}
	for _, dt := range []float64{1.0 / 60, 0.5, 10} {
		for _, actions := range combos {
			s, player := newGameSession(t)
			s.Delta = dt
			press(s, actions...)
			for i := 0; i < 30; i++ {
				MovePlayer(s)
				p := position(player)
				if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
					t.Fatalf("Expected player inside [%v,%v]x[%v,%v], got %+v (dt=%v, actions=%v)", minX, maxX, minY, maxY, p, dt, actions)
				}
			}
		}
	}

	s, player := newGameSession(t)
	s.Delta = 10
	press(s, cfg.ActionMoveRight, cfg.ActionMoveDown)
	MovePlayer(s)
	if p := position(player); p.X != maxX || p.Y != minY {
		t.Errorf("Expected player pinned at (%v, %v), got %+v", maxX, minY, p)
	}
}

func TestMoveEnemiesConverges(t *testing.T) {
	s, player := newGameSession(t)
	target := position(player)
	enemy := spawnEnemy(s, math.Vec2{X: 300, Y: 200}, 1)

	prev := distance(position(enemy), target)
	for i := 0; i < 600; i++ {
		MoveEnemies(s)
		p := position(enemy)
		d := distance(p, target)
		if d > prev {
			t.Fatalf("Expected distance to shrink at tick %d: %v -> %v", i, prev, d)
		}
		if p.X < target.X || p.Y < target.Y {
			t.Fatalf("Expected no overshoot at tick %d, got %+v", i, p)
		}
		prev = d
	}

	// 600 ticks at 1/60 s and speed 0.5 leave (1-1/120)^600 of the gap.
	want := distance(math.Vec2{X: 300, Y: 200}, target) * gomath.Pow(1-cfg.Enemy.Speed/60, 600)
	if gomath.Abs(prev-want) > 1e-6 {
		t.Errorf("Expected remaining distance %v, got %v", want, prev)
	}
}

func TestMoveEnemiesSingleStep(t *testing.T) {
	s, _ := newGameSession(t)
	enemy := spawnEnemy(s, math.Vec2{X: 100, Y: -100}, 1)

	MoveEnemies(s)

	k := cfg.Enemy.Speed / 60
	wantX := 100 + k*(cfg.Player.StartX-100)
	wantY := -100 + k*(cfg.Player.StartY+100)
	if p := position(enemy); gomath.Abs(p.X-wantX) > 1e-9 || gomath.Abs(p.Y-wantY) > 1e-9 {
		t.Errorf("Expected enemy at (%v, %v), got %+v", wantX, wantY, p)
	}
}

func TestSpawnWaveRejectsNearPoints(t *testing.T) {
	perWave := cfg.Wave.SpawnPerWave
	t.Cleanup(func() { cfg.Wave.SpawnPerWave = perWave })
	cfg.Wave.SpawnPerWave = 4

	s, _ := newGameSession(t)
	s.Delta = cfg.Wave.IntervalSeconds

	candidates := []math.Vec2{
		{X: -150, Y: 0},  // 50 away
		{X: -100, Y: 0},  // exactly 100 away
		{X: -50, Y: 0},   // 150 away
		{X: 400, Y: 250}, // far
	}
	next := 0
	s.Sample = func(cfg.ArenaConfig) math.Vec2 {
		p := candidates[next%len(candidates)]
		next++
		return p
	}

	SpawnWave(s)
	if countEnemies(s) != 0 {
		t.Errorf("Expected spawns to be deferred until flush, got %d enemies", countEnemies(s))
	}
	s.Flush()

	if next != 4 {
		t.Errorf("Expected 4 candidates drawn, got %d", next)
	}
	var got []math.Vec2
	tags.Enemy.Each(s.World, func(e *donburi.Entry) {
		got = append(got, position(e))
		if hp := components.Health.Get(e).Current; hp != cfg.Enemy.Health {
			t.Errorf("Expected enemy health = %d, got %d", cfg.Enemy.Health, hp)
		}
	})
	if len(got) != 2 {
		t.Fatalf("Expected 2 enemies, got %d", len(got))
	}
	for _, want := range candidates[2:] {
		found := false
		for _, p := range got {
			if p == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected an enemy at exactly %+v, got %v", want, got)
		}
	}
	if s.Stats.Waves != 1 || s.Stats.Spawned != 2 {
		t.Errorf("Expected stats waves=1 spawned=2, got %+v", s.Stats)
	}
}

func TestSpawnWaveTiming(t *testing.T) {
	tests := []struct {
		name      string
		delta     float64
		ticks     int
		wantWaves int
	}{
		{"before first interval", 1.0 / 60, 59, 0},
		{"one batch per interval", 0.25, 8, 2},
		{"one batch when a tick spans several intervals", 2.5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newGameSession(t)
			s.Delta = tt.delta
			s.Sample = func(cfg.ArenaConfig) math.Vec2 { return math.Vec2{X: 400, Y: 250} }
			for i := 0; i < tt.ticks; i++ {
				SpawnWave(s)
			}
			s.Flush()
			if s.Stats.Waves != tt.wantWaves {
				t.Errorf("Expected %d waves, got %d", tt.wantWaves, s.Stats.Waves)
			}
			if got, want := countEnemies(s), tt.wantWaves*cfg.Wave.SpawnPerWave; got != want {
				t.Errorf("Expected %d enemies, got %d", want, got)
			}
		})
	}
}

func TestResolveContactsAccumulatesDamage(t *testing.T) {
	s, player := newGameSession(t)
	origin := position(player)

	inside := []math.Vec2{
		{X: origin.X, Y: origin.Y},
		{X: origin.X + 19.9, Y: origin.Y},
		{X: origin.X, Y: origin.Y - 10},
		{X: origin.X - 14, Y: origin.Y + 14},
	}
	outside := []math.Vec2{
		{X: origin.X + cfg.Player.Size, Y: origin.Y}, // on the radius
		{X: origin.X + 30, Y: origin.Y},
		{X: origin.X + 300, Y: origin.Y + 100},
	}
	var insideEntities []donburi.Entity
	for _, p := range inside {
		insideEntities = append(insideEntities, spawnEnemy(s, p, 1).Entity())
	}
	for _, p := range outside {
		spawnEnemy(s, p, 1)
	}

	ResolveContacts(s)

	want := cfg.Player.Health - len(inside)*cfg.Enemy.Damage
	if hp := components.Health.Get(player).Current; hp != want {
		t.Errorf("Expected player health = %d, got %d", want, hp)
	}
	if s.Commands.Len() != len(inside) {
		t.Errorf("Expected %d queued despawns, got %d", len(inside), s.Commands.Len())
	}

	s.Flush()
	for _, e := range insideEntities {
		if s.World.Valid(e) {
			t.Errorf("Expected enemy %v to be removed", e)
		}
	}
	if got := countEnemies(s); got != len(outside) {
		t.Errorf("Expected %d enemies left, got %d", len(outside), got)
	}
	if s.Stats.Hits != len(inside) {
		t.Errorf("Expected %d hits, got %d", len(inside), s.Stats.Hits)
	}
	if sounds := s.DrainSounds(); len(sounds) != 1 || sounds[0] != cfg.SoundHit {
		t.Errorf("Expected one hit sound, got %v", sounds)
	}

	// Already removed enemies cannot hit again.
	ResolveContacts(s)
	if hp := components.Health.Get(player).Current; hp != want {
		t.Errorf("Expected player health to stay %d, got %d", want, hp)
	}
}

func TestResolveContactsAfterMovement(t *testing.T) {
	s, player := newGameSession(t)
	enemy := spawnEnemy(s, math.Vec2{X: cfg.Player.StartX + 60, Y: cfg.Player.StartY}, 1)

	ResolveContacts(s)
	if s.Commands.Len() != 0 {
		t.Fatal("Expected no contact before moving")
	}

	components.Transform.Get(player).Position.X += 45
	s.Sync(player)
	ResolveContacts(s)
	s.Flush()

	if s.World.Valid(enemy.Entity()) {
		t.Error("Expected enemy to be removed once the player moved onto it")
	}
}

func TestResolveContactsSaturates(t *testing.T) {
	s, player := newGameSession(t)
	components.Health.Get(player).Current = 15
	for i := 0; i < 3; i++ {
		spawnEnemy(s, position(player), 1)
	}

	ResolveContacts(s)

	health := components.Health.Get(player)
	if health.Current != 0 {
		t.Errorf("Expected health to stop at 0, got %d", health.Current)
	}
	if !health.Depleted() {
		t.Error("Expected health to be depleted")
	}
}

func TestLossSpawnsSingleOverlay(t *testing.T) {
	s, player := newGameSession(t)
	InstallEndScreenHooks(s.State, func() *session.Session { return s })
	schedule := NewArenaSchedule()

	components.Health.Get(player).Current = cfg.Enemy.Damage
	spawnEnemy(s, position(player), 1)

	schedule.Tick(s)

	if s.State.Current() != cfg.StateLost {
		t.Fatalf("Expected state Lost, got %v", s.State.Current())
	}
	if boxes, labels := countEndScreen(s); boxes != 1 || labels != 1 {
		t.Errorf("Expected 1 box and 1 label, got %d and %d", boxes, labels)
	}
	if countEnemies(s) != 0 {
		t.Errorf("Expected the hitting enemy to be removed in the same tick")
	}

	for i := 0; i < 10; i++ {
		schedule.Tick(s)
	}
	if s.State.Current() != cfg.StateLost {
		t.Errorf("Expected idle ticks to stay in Lost, got %v", s.State.Current())
	}
	if boxes, labels := countEndScreen(s); boxes != 1 || labels != 1 {
		t.Errorf("Expected overlay to stay single, got %d boxes and %d labels", boxes, labels)
	}
}

func TestEndScreenContent(t *testing.T) {
	tests := []struct {
		outcome   cfg.GameState
		wantColor color.RGBA
		wantText  string
	}{
		{cfg.StateLost, cfg.EndScreen.LostColor, cfg.EndScreen.LostText},
		{cfg.StateWon, cfg.EndScreen.WonColor, cfg.EndScreen.WonText},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			s := newTestSession(t, tt.outcome)
			SpawnEndScreen(s, tt.outcome)
			SpawnEndScreen(s, tt.outcome)

			box, ok := components.Overlay.First(s.World)
			if !ok {
				t.Fatal("Expected an overlay box")
			}
			overlay := components.Overlay.Get(box)
			if overlay.Color != tt.wantColor {
				t.Errorf("Expected box color %v, got %v", tt.wantColor, overlay.Color)
			}
			if overlay.Width != 600 || overlay.Height != 600 {
				t.Errorf("Expected 600x600 box, got %vx%v", overlay.Width, overlay.Height)
			}

			labelEntry, ok := components.Label.First(s.World)
			if !ok {
				t.Fatal("Expected a label")
			}
			label := components.Label.Get(labelEntry)
			if label.Text != tt.wantText {
				t.Errorf("Expected text %q, got %q", tt.wantText, label.Text)
			}
			if label.Parent != box.Entity() {
				t.Error("Expected label to belong to the box")
			}
			if label.WrapWidth != overlay.Width {
				t.Errorf("Expected wrap width %v, got %v", overlay.Width, label.WrapWidth)
			}
			if boxes, labels := countEndScreen(s); boxes != 1 || labels != 1 {
				t.Errorf("Expected a single overlay, got %d boxes and %d labels", boxes, labels)
			}
		})
	}
}

func TestListenForRestart(t *testing.T) {
	for _, outcome := range []cfg.GameState{cfg.StateLost, cfg.StateWon} {
		t.Run(outcome.String(), func(t *testing.T) {
			s := newTestSession(t, outcome)
			schedule := NewArenaSchedule()
			SpawnEndScreen(s, outcome)

			release(s)
			schedule.Tick(s)
			if s.State.Current() != outcome {
				t.Fatalf("Expected idle tick to keep %v, got %v", outcome, s.State.Current())
			}

			press(s, cfg.ActionNone)
			s.Input.AnyJustPressed = true
			schedule.Tick(s)

			if s.State.Current() != cfg.StateMenu {
				t.Errorf("Expected state Menu, got %v", s.State.Current())
			}
			if boxes, labels := countEndScreen(s); boxes != 0 || labels != 0 {
				t.Errorf("Expected overlay removed, got %d boxes and %d labels", boxes, labels)
			}

			release(s)
			schedule.Tick(s)
			if s.State.Current() != cfg.StateMenu {
				t.Errorf("Expected to stay in Menu, got %v", s.State.Current())
			}
		})
	}
}

func TestTogglePause(t *testing.T) {
	s, player := newGameSession(t)
	schedule := NewArenaSchedule()
	spawnEnemy(s, math.Vec2{X: 300, Y: 200}, 1)

	press(s, cfg.ActionPause)
	schedule.Tick(s)
	if s.State.Current() != cfg.StatePaused {
		t.Fatalf("Expected Paused, got %v", s.State.Current())
	}

	frozen := position(player)
	survived := s.Stats.Survived
	press(s, cfg.ActionMoveRight)
	for i := 0; i < 120; i++ {
		schedule.Tick(s)
	}
	if position(player) != frozen {
		t.Error("Expected player to stay still while paused")
	}
	if s.Stats.Waves != 0 || s.Stats.Survived != survived {
		t.Errorf("Expected no game progress while paused, got %+v", s.Stats)
	}

	press(s, cfg.ActionPause)
	schedule.Tick(s)
	if s.State.Current() != cfg.StateGame {
		t.Fatalf("Expected Game after unpausing, got %v", s.State.Current())
	}
	if n := countEnemies(s); n != 1 {
		t.Errorf("Expected resuming to keep the world, got %d enemies", n)
	}

	press(s, cfg.ActionPause)
	schedule.Tick(s)
	press(s, cfg.ActionMenuBack)
	schedule.Tick(s)
	if s.State.Current() != cfg.StateMenu {
		t.Errorf("Expected Menu after back from pause, got %v", s.State.Current())
	}
}

type fakeMenuActions struct {
	settings int
	quit     int
}

func (f *fakeMenuActions) OpenSettings() { f.settings++ }
func (f *fakeMenuActions) Quit() { f.quit++ }

func TestUpdateMenu(t *testing.T) {
	actions := &fakeMenuActions{}
	s := newTestSession(t, cfg.StateMenu)
	update := NewUpdateMenu(actions)

	press(s, cfg.ActionMenuUp)
	update(s)
	if got := GetOrCreateMenu(s).SelectedIndex; got != len(components.MainMenuOptions)-1 {
		t.Errorf("Expected selection to wrap to the last option, got %d", got)
	}

	press(s, cfg.ActionMenuSelect)
	update(s)
	if actions.quit != 1 {
		t.Errorf("Expected Quit to be called once, got %d", actions.quit)
	}

	press(s, cfg.ActionMenuUp)
	update(s)
	press(s, cfg.ActionMenuSelect)
	update(s)
	if actions.settings != 1 {
		t.Errorf("Expected OpenSettings to be called once, got %d", actions.settings)
	}

	press(s, cfg.ActionMenuDown)
	update(s)
	press(s, cfg.ActionMenuDown)
	update(s)
	press(s, cfg.ActionMenuSelect)
	update(s)
	s.State.Apply()
	if s.State.Current() != cfg.StateGame {
		t.Errorf("Expected New Game to enter Game, got %v", s.State.Current())
	}
}

func TestUpdateSplash(t *testing.T) {
	s := newTestSession(t, cfg.StateSplash)
	schedule := NewSchedule().Add(UpdateSplash, cfg.StateSplash)

	release(s)
	for i := 0; i < 30; i++ {
		schedule.Tick(s)
	}
	if s.State.Current() != cfg.StateSplash {
		t.Fatalf("Expected Splash halfway through the card, got %v", s.State.Current())
	}
	_, fade := GetOrCreateSplash(s)
	if fade.Alpha <= 0 || fade.Alpha >= 1 {
		t.Errorf("Expected partial fade, got %v", fade.Alpha)
	}

	for i := 0; i < 40 && s.State.Current() == cfg.StateSplash; i++ {
		schedule.Tick(s)
	}
	if s.State.Current() != cfg.StateMenu {
		t.Errorf("Expected Menu after the splash duration, got %v", s.State.Current())
	}
}

func TestUpdateSplashSkip(t *testing.T) {
	s := newTestSession(t, cfg.StateSplash)
	schedule := NewSchedule().Add(UpdateSplash, cfg.StateSplash)

	press(s, cfg.ActionMenuSelect)
	schedule.Tick(s)
	if s.State.Current() != cfg.StateMenu {
		t.Errorf("Expected a key press to skip the splash, got %v", s.State.Current())
	}
}

func TestScheduleOrderAndGating(t *testing.T) {
	s := newTestSession(t, cfg.StateGame)
	var order []string
	record := func(name string) System {
		return func(*session.Session) { order = append(order, name) }
	}

	NewSchedule().
		Add(record("a"), cfg.StateGame).
		Add(record("menu-only"), cfg.StateMenu).
		Add(record("b")).
		Add(func(s *session.Session) {
			order = append(order, "c")
			_ = s.State.Set(cfg.StatePaused)
		}, cfg.StateGame).
		Add(record("d"), cfg.StateGame, cfg.StatePaused).
		Tick(s)

	want := []string{"a", "b", "c", "d"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
	if s.State.Current() != cfg.StatePaused {
		t.Errorf("Expected transition applied after the tick, got %v", s.State.Current())
	}
}

func TestSettingsAdjust(t *testing.T) {
	s := components.SettingsData{Quality: cfg.QualityHigh, Volume: cfg.SettingsMenu.MaxVolume}

	CycleQuality(&s, 1)
	if s.Quality != cfg.QualityLow {
		t.Errorf("Expected quality to wrap to Low, got %v", s.Quality)
	}
	CycleQuality(&s, -1)
	if s.Quality != cfg.QualityHigh {
		t.Errorf("Expected quality to wrap back to High, got %v", s.Quality)
	}

	AdjustVolume(&s, 1)
	if s.Volume != cfg.SettingsMenu.MaxVolume {
		t.Errorf("Expected volume to clamp at %d, got %d", cfg.SettingsMenu.MaxVolume, s.Volume)
	}
	AdjustVolume(&s, -100)
	if s.Volume != 0 {
		t.Errorf("Expected volume to clamp at 0, got %d", s.Volume)
	}
}
