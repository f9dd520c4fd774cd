package game

import (
	"time"

	"dotgames/grid"
	"dotgames/input"
)

// selectionDelay debounces menu navigation so one stick push moves the
// selection a single step.
const selectionDelay = 250 * time.Millisecond

// SelectionScreen cycles through the registered games and hands the
// chosen one to the caller. The registry is an ordered slice fixed at
// construction; adding a game to the device is one entry here.
type SelectionScreen struct {
	games []Game
	index int
}

// NewSelectionScreen registers the games in menu order. At least one
// game is required.
func NewSelectionScreen(games ...Game) *SelectionScreen {
	if len(games) == 0 {
		panic("game: no games registered")
	}
	return &SelectionScreen{games: games}
}

func (s *SelectionScreen) next() {
	s.index = (s.index + 1) % len(s.games)
}

func (s *SelectionScreen) prev() {
	s.index = (s.index + len(s.games) - 1) % len(s.games)
}

// Run shows the current game's title screen and reacts to the stick:
// left and right move the selection with wraparound, a button press
// selects. The chosen game is returned with exclusive ownership; the
// menu is spent once Run returns. ok is false when the host shut down
// before a choice was made.
func (s *SelectionScreen) Run(c *Console) (Game, bool) {
	c.Display.Show(s.games[s.index].TitleScreen())
	for {
		sig, ok := c.Joystick.PollUntilAny(c.Stop)
		if !ok {
			return nil, false
		}
		if sig.Type != input.SignalJoystick {
			continue
		}
		js := sig.Joystick
		if js.Button {
			c.Beep(SoundSelect)
			return s.games[s.index], true
		}
		dir, has := js.Direction()
		if !has {
			continue
		}
		switch dir {
		case grid.Left:
			s.prev()
		case grid.Right:
			s.next()
		default:
			continue
		}
		c.Display.Show(s.games[s.index].TitleScreen())
		c.Clock.Sleep(selectionDelay)
	}
}
