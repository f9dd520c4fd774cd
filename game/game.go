// Package game defines the lifecycle contract dot-matrix games
// implement, the console of peripherals they play through, and the
// selection menu that hands control to the chosen game.
package game

import "dotgames/grid"

// Game is the uniform lifecycle every game implements. The host loop
// drives it as: Play, GameOver, Reset, repeat.
type Game interface {
	// TitleScreen returns the static image shown in the selection menu.
	TitleScreen() *grid.Screen

	// Play runs the game's own tick loop until the round ends, win or
	// lose.
	Play(c *Console)

	// GameOver renders the end-of-round animation and blocks until the
	// player acknowledges with a button press.
	GameOver(c *Console)

	// Reset restores a fresh initial state without reallocating
	// storage, ready for the next Play.
	Reset()
}
