package sim

import (
	"math/rand"
	"time"
)

// NoisePin is the hosted stand-in for a floating ADC pin: every
// conversion returns electrical garbage. Only the low byte matters to
// the noise generator, so a full-range draw is a faithful imitation.
type NoisePin struct {
	rnd *rand.Rand
}

// NewNoisePin returns a pin seeded from the wall clock.
func NewNoisePin() *NoisePin {
	return &NoisePin{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Get returns one 10-bit sample of noise.
func (p *NoisePin) Get() uint16 {
	return uint16(p.rnd.Intn(1024))
}
