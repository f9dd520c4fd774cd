package game

import (
	"math/rand"

	"dotgames/grid"
	"dotgames/input"
	"dotgames/periph"
)

// Display is the slice of the matrix driver games draw through.
type Display interface {
	Show(s *grid.Screen)
	Clear()
}

// Console bundles the peripherals a game plays through. Exactly one
// component uses the console at a time; there is no concurrent access
// anywhere below it.
type Console struct {
	Display  Display
	Joystick *input.Poller
	Rand     rand.Source64
	Clock    periph.Clock

	// Sound receives game events; nil means silent.
	Sound Sounder

	// Stop is closed when the host wants to shut down. A nil channel
	// never fires, which is the bare-metal behavior.
	Stop <-chan struct{}
}

// Beep plays an event sound if a sounder is attached.
func (c *Console) Beep(s SoundType) {
	if c.Sound != nil {
		c.Sound.Play(s)
	}
}

// Stopped reports whether the host has requested shutdown. Game tick
// loops check it between ticks.
func (c *Console) Stopped() bool {
	select {
	case <-c.Stop:
		return true
	default:
		return false
	}
}
