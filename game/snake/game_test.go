package snake

import (
	"testing"
	"time"

	"dotgames/game"
	"dotgames/grid"
	"dotgames/input"
)

var _ game.Game = (*Game)(nil)

// fixedRand is a rand.Source64 returning a constant draw.
type fixedRand struct {
	v uint64
}

func (r *fixedRand) Uint64() uint64 { return r.v }
func (r *fixedRand) Int63() int64   { return int64(r.v >> 1) }
func (r *fixedRand) Seed(int64)     {}

type fakeDisplay struct {
	frames []grid.Screen // copies, since games mutate their screen
}

func (d *fakeDisplay) Show(s *grid.Screen) { d.frames = append(d.frames, *s) }
func (d *fakeDisplay) Clear()              {}

type fakeClock struct {
	slept []time.Duration
}

func (c *fakeClock) Sleep(d time.Duration) { c.slept = append(c.slept, d) }

// stickDevice replays scripted signals; nil entries are quiet samples.
// Exhausting the script keeps returning quiet.
type stickDevice struct {
	reads []*input.Signal
	i     int
}

func (d *stickDevice) Read() (input.Signal, bool) {
	if d.i >= len(d.reads) {
		return input.Signal{}, false
	}
	r := d.reads[d.i]
	d.i++
	if r == nil {
		return input.Signal{}, false
	}
	return *r, true
}

type countingSounder struct {
	played []game.SoundType
}

func (s *countingSounder) Play(st game.SoundType) { s.played = append(s.played, st) }

func testConsole(reads []*input.Signal) (*game.Console, *fakeDisplay, *countingSounder) {
	display := &fakeDisplay{}
	sound := &countingSounder{}
	c := &game.Console{
		Display:  display,
		Joystick: input.NewPoller(&stickDevice{reads: reads}, &fakeClock{}),
		Rand:     &fixedRand{},
		Clock:    &fakeClock{},
		Sound:    sound,
	}
	return c, display, sound
}

func TestNewStartsInInitialLayout(t *testing.T) {
	g := New()

	if g.interval != initialInterval {
		t.Errorf("Expected interval %v, got %v", initialInterval, g.interval)
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if g.egg != (grid.Dot{X: 1, Y: 6}) {
		t.Errorf("Expected egg at (1,6), got %v", g.egg)
	}

	// Exactly the body and the egg are lit.
	want := []grid.Dot{{X: 1, Y: 6}, {X: 3, Y: 4}, {X: 2, Y: 4}, {X: 1, Y: 4}}
	if g.screen.CountLit() != len(want) {
		t.Fatalf("Expected %d lit cells, got %d", len(want), g.screen.CountLit())
	}
	for _, d := range want {
		if !g.screen.IsSet(d) {
			t.Errorf("Expected %v lit", d)
		}
	}
}

func TestThreeQuietTicksMoveRight(t *testing.T) {
	g := New()
	rnd := &fixedRand{}

	for i := 0; i < 3; i++ {
		if out := g.update(rnd); out != Moved {
			t.Fatalf("Tick %d: expected Moved, got %d", i, out)
		}
	}
	if g.snake.head.pos != (grid.Dot{X: 6, Y: 4}) {
		t.Errorf("Expected head three cells right at (6,4), got %v", g.snake.head.pos)
	}
	if g.snake.length() != startLength {
		t.Errorf("Expected length still %d, got %d", startLength, g.snake.length())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if !g.screen.IsSet(grid.Dot{X: 6, Y: 4}) || g.screen.IsSet(grid.Dot{X: 1, Y: 4}) {
		t.Error("Expected the screen to track the moved body")
	}
}

// moveEgg relocates the egg by hand, keeping the screen consistent.
func moveEgg(g *Game, d grid.Dot) {
	g.screen.Clear(g.egg)
	g.egg = d
	g.screen.Set(g.egg)
}

func TestEggAheadIsEaten(t *testing.T) {
	g := New()
	moveEgg(g, grid.Dot{X: 4, Y: 4}) // directly ahead of the head

	out := g.update(&fixedRand{})
	if out != EggEaten {
		t.Fatalf("Expected EggEaten, got %d", out)
	}
	if g.snake.length() != startLength+1 {
		t.Errorf("Expected length %d, got %d", startLength+1, g.snake.length())
	}
	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
	// The new egg sits on a previously unlit cell, now lit.
	if g.egg == (grid.Dot{X: 4, Y: 4}) {
		t.Error("Expected the egg relocated")
	}
	if !g.screen.IsSet(g.egg) {
		t.Error("Expected the new egg lit")
	}
	for i := 0; i < g.snake.tail.len(); i++ {
		if g.snake.tail.at(i).pos == g.egg {
			t.Error("Expected the egg off the body")
		}
	}
	if g.snake.head.pos == g.egg {
		t.Error("Expected the egg off the head")
	}
}

func TestEggRelocationFollowsDraw(t *testing.T) {
	// Draw k lands the egg on the k-th unlit cell in raster order.
	g := New()
	moveEgg(g, grid.Dot{X: 4, Y: 4})

	before := g.screen
	unlit := []grid.Dot{}
	for it := before.Unlit(); ; {
		d, ok := it.Next()
		if !ok {
			break
		}
		unlit = append(unlit, d)
	}

	g.update(&fixedRand{v: 7})
	if g.egg != unlit[7] {
		t.Errorf("Expected egg at %v, got %v", unlit[7], g.egg)
	}
}

func TestEggSpeedsUpTicks(t *testing.T) {
	g := New()
	moveEgg(g, grid.Dot{X: 4, Y: 4})

	g.update(&fixedRand{})
	want := initialInterval - initialInterval/50
	if g.interval != want {
		t.Errorf("Expected interval %v after one egg, got %v", want, g.interval)
	}
}

func TestSpeedUpFloorsAtIntegerDivision(t *testing.T) {
	g := New()
	g.interval = 49 // below 50 units, 2% truncates to zero
	g.speedUp()
	if g.interval != 49 {
		t.Errorf("Expected interval unchanged at the floor, got %v", g.interval)
	}
}

// serpentine returns all 64 cells in a connected boustrophedon path.
func serpentine() []grid.Dot {
	path := make([]grid.Dot, 0, grid.TotalDots)
	for y := 0; y < grid.Height; y++ {
		for i := 0; i < grid.Width; i++ {
			x := i
			if y%2 == 1 {
				x = grid.Width - 1 - i
			}
			path = append(path, grid.Dot{X: x, Y: y})
		}
	}
	return path
}

func TestFillingTheGridWins(t *testing.T) {
	g := New()
	path := serpentine()

	// Body occupies every cell except the last; the egg sits there.
	g.snake.tail.clear()
	g.snake.head = segment{dir: grid.Left, pos: path[62]}
	for i := 61; i >= 0; i-- {
		g.snake.tail.pushBack(segment{dir: grid.Left, pos: path[i]})
	}
	g.egg = path[63]

	out := g.update(&fixedRand{})
	if out != Won {
		t.Fatalf("Expected Won, got %d", out)
	}
	if g.Score() != grid.TotalDots-startLength {
		t.Errorf("Expected victory score %d, got %d", grid.TotalDots-startLength, g.Score())
	}
}

func TestPlayQuietStickRunsIntoWall(t *testing.T) {
	g := New()
	c, display, sound := testConsole(nil)

	g.Play(c)

	// Four moves to the wall, then the clamped tick collides.
	if len(display.frames) != 4 {
		t.Fatalf("Expected 4 rendered ticks, got %d", len(display.frames))
	}
	last := display.frames[3]
	if !last.IsSet(grid.Dot{X: 7, Y: 4}) {
		t.Error("Expected the final frame with the head at the wall")
	}
	if len(sound.played) != 1 || sound.played[0] != game.SoundGameOver {
		t.Errorf("Expected one game-over sound, got %v", sound.played)
	}
}

func TestPlaySteersFromLastSignal(t *testing.T) {
	g := New()
	up := &input.Signal{Type: input.SignalJoystick, Joystick: input.JoystickSignal{Vert: 80}}
	down := &input.Signal{Type: input.SignalJoystick, Joystick: input.JoystickSignal{Vert: -80}}
	// Both arrive within the first tick's poll window; the newest wins.
	c, _, _ := testConsole([]*input.Signal{up, down})

	g.Play(c)

	// Heading down from (3,4): three moves to the bottom, then collide.
	if g.snake.head.pos != (grid.Dot{X: 3, Y: 0}) {
		t.Errorf("Expected head at (3,0), got %v", g.snake.head.pos)
	}
}

func TestGameOverZeroScoreFlashesOnly(t *testing.T) {
	g := New()
	press := &input.Signal{Type: input.SignalJoystick, Joystick: input.JoystickSignal{Button: true}}
	c, display, _ := testConsole([]*input.Signal{press})

	g.GameOver(c)

	// Empty, then two flash cycles of (frame, empty). No tally.
	if len(display.frames) != 5 {
		t.Fatalf("Expected 5 screens for a zero score, got %d", len(display.frames))
	}
	for i, lit := range []int{0, 4, 0, 4, 0} {
		if got := display.frames[i].CountLit(); got != lit {
			t.Errorf("Screen %d: expected %d lit, got %d", i, lit, got)
		}
	}
}

func TestGameOverTalliesScore(t *testing.T) {
	g := New()
	// Grow twice through scripted eggs.
	for i := 0; i < 2; i++ {
		moveEgg(g, g.snake.head.pos.Move(g.snake.head.dir))
		if out := g.update(&fixedRand{}); out != EggEaten {
			t.Fatalf("Setup egg %d: got %d", i, out)
		}
	}
	if g.Score() != 2 {
		t.Fatalf("Expected score 2, got %d", g.Score())
	}

	press := &input.Signal{Type: input.SignalJoystick, Joystick: input.JoystickSignal{Button: true}}
	c, display, _ := testConsole([]*input.Signal{press})

	g.GameOver(c)

	// Flash screens plus one tally screen per point.
	if len(display.frames) != 5+2 {
		t.Fatalf("Expected 7 screens, got %d", len(display.frames))
	}
	// Tally dots appear cumulatively in raster order.
	if got := display.frames[5].CountLit(); got != 1 {
		t.Errorf("Expected first tally screen with 1 dot, got %d", got)
	}
	if got := display.frames[6].CountLit(); got != 2 {
		t.Errorf("Expected second tally screen with 2 dots, got %d", got)
	}
	if !display.frames[6].IsSet(grid.Dot{X: 0, Y: 7}) || !display.frames[6].IsSet(grid.Dot{X: 0, Y: 6}) {
		t.Error("Expected tally dots in raster order from the top-left")
	}
}

func TestGameOverWaitsForButton(t *testing.T) {
	g := New()
	right := &input.Signal{Type: input.SignalJoystick, Joystick: input.JoystickSignal{Horiz: 80}}
	press := &input.Signal{Type: input.SignalJoystick, Joystick: input.JoystickSignal{Button: true}}
	c, _, _ := testConsole([]*input.Signal{right, nil, right, press})

	// Returning at all means the directional signals did not end the
	// wait and the button press did; a regression hangs the test.
	g.GameOver(c)
}

func TestResetRestoresInitialLayout(t *testing.T) {
	g := New()
	c, _, _ := testConsole(nil)
	g.Play(c) // run into the wall

	g.Reset()

	fresh := New()
	if g.screen != fresh.screen {
		t.Error("Expected reset screen to match a fresh game")
	}
	if g.interval != initialInterval {
		t.Errorf("Expected interval %v, got %v", initialInterval, g.interval)
	}
	if g.egg != fresh.egg || g.snake.head != fresh.snake.head {
		t.Error("Expected reset layout to match a fresh game")
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0 after reset, got %d", g.Score())
	}
}
