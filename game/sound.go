package game

// SoundType identifies game event sounds.
type SoundType int

const (
	SoundSelect SoundType = iota // menu confirms a game
	SoundEgg                     // snake eats the egg
	SoundGameOver                // round ends
)

// Sounder plays event sounds. Implementations must not block the game
// loop.
type Sounder interface {
	Play(s SoundType)
}
