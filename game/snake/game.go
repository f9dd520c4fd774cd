package snake

import (
	"math/rand"
	"time"

	"dotgames/game"
	"dotgames/grid"
	"dotgames/input"
)

const (
	// Starting layout. The egg sits near the top-left corner, the
	// snake on the middle row heading right.
	eggStartX = 1
	eggStartY = grid.Height - 2
	startRow  = grid.Height / 2

	// startLength is the initial body length and also the head's
	// starting column.
	startLength = grid.Width/2 - 1

	// maxLength ends the game in victory: the snake fills the grid.
	maxLength = grid.TotalDots

	// initialInterval is the tick period of a fresh round. Every egg
	// shortens it by 2%, which is also the input poll window, so the
	// game reads the stick exactly once per tick.
	initialInterval = 500 * time.Millisecond
)

// Outcome is the result of one tick update.
type Outcome int

const (
	Moved Outcome = iota
	EggEaten
	Collision
	Won
)

// Game is the snake engine and its lifecycle implementation.
type Game struct {
	egg      grid.Dot
	snake    snake
	screen   grid.Screen
	interval time.Duration
}

// New constructs a game in its initial layout. The value is reused
// across rounds via Reset; nothing allocates per round.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Score is the number of eggs eaten this round.
func (g *Game) Score() int {
	return g.snake.length() - startLength
}

// update advances one tick: move the body, then resolve what the new
// head position means.
func (g *Game) update(rnd rand.Source64) Outcome {
	res, dropped := g.snake.slither(g.egg)
	switch res {
	case eggEaten:
		if g.snake.length() == maxLength {
			return Won
		}
		g.relocateEgg(rnd)
		g.speedUp()
		return EggEaten
	case collided:
		return Collision
	default:
		g.screen.Clear(dropped.pos)
		g.screen.Set(g.snake.head.pos)
		return Moved
	}
}

// relocateEgg picks a uniformly random unlit cell. The eaten egg's cell
// stays lit (the head now sits on it), so the unlit cells are exactly
// the grid minus the body.
func (g *Game) relocateEgg(rnd rand.Source64) {
	unlit := grid.TotalDots - g.snake.length()
	index := int(rnd.Uint64() % uint64(unlit))
	it := g.screen.Unlit()
	for {
		d, ok := it.Next()
		if !ok {
			panic("snake: no unlit cell for the egg")
		}
		if index == 0 {
			g.egg = d
			break
		}
		index--
	}
	g.screen.Set(g.egg)
}

// speedUp shortens the tick interval by 2%. Integer division supplies
// the floor; the interval never reaches zero.
func (g *Game) speedUp() {
	g.interval -= g.interval / 50
}

// Play runs the round: poll the stick for one tick interval, steer,
// update, render. Returns when the round ends or the host stops.
func (g *Game) Play(c *game.Console) {
	for {
		if sig, ok := c.Joystick.Poll(g.interval).Last(); ok {
			if sig.Type == input.SignalJoystick {
				if dir, has := sig.Joystick.Direction(); has {
					g.snake.setDirection(dir)
				}
			}
		}

		switch g.update(c.Rand) {
		case EggEaten:
			c.Beep(game.SoundEgg)
		case Collision, Won:
			c.Beep(game.SoundGameOver)
			return
		}

		c.Display.Show(&g.screen)
		if c.Stopped() {
			return
		}
	}
}

// GameOver flashes the final frame, tallies the score one dot per egg,
// and waits for a button press.
func (g *Game) GameOver(c *game.Console) {
	const flashDelay = 400 * time.Millisecond

	empty := &grid.Screen{}
	c.Display.Show(empty)
	for i := 0; i < 2; i++ {
		c.Clock.Sleep(flashDelay)
		c.Display.Show(&g.screen)
		c.Clock.Sleep(flashDelay)
		c.Display.Show(empty)
	}

	// One lit dot per point, in raster order, paced so the whole tally
	// takes about three seconds. A zero score keeps the plain flash.
	if score := g.Score(); score > 0 {
		delay := 3 * time.Second / time.Duration(score)
		tally := &grid.Screen{}
		it := (&grid.Screen{}).Dots()
		for n := 0; n < score; n++ {
			d, _ := it.Next()
			tally.Set(d)
			c.Display.Show(tally)
			c.Clock.Sleep(delay)
		}
	}

	for {
		sig, ok := c.Joystick.PollUntilAny(c.Stop)
		if !ok {
			return
		}
		if sig.Type == input.SignalJoystick && sig.Joystick.Button {
			return
		}
	}
}

// Reset restores the initial layout: snake back to the starting body,
// egg back to its corner, full tick interval, screen redrawn.
func (g *Game) Reset() {
	g.egg = grid.Dot{X: eggStartX, Y: eggStartY}
	g.snake.init()

	g.screen.ClearAll()
	g.screen.Set(g.egg)
	g.screen.Set(g.snake.head.pos)
	for i := 0; i < g.snake.tail.len(); i++ {
		g.screen.Set(g.snake.tail.at(i).pos)
	}

	g.interval = initialInterval
}

// titleScreen is the glyph shown in the selection menu.
var titleScreen = grid.NewScreen([grid.Width]uint8{
	0b00000000,
	0b00000000,
	0b11011111,
	0b10011001,
	0b10011001,
	0b11111011,
	0b00000000,
	0b00000000,
})

// TitleScreen returns the menu image. The screen is static and shared;
// callers treat it as read-only.
func (g *Game) TitleScreen() *grid.Screen {
	return titleScreen
}
