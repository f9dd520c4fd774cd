// Package noise stretches ADC noise into full-width pseudo-random
// values. A floating (unconnected) analog pin reads electrical noise;
// repeatedly folding the low byte of each sample into a rotating
// accumulator amortizes that noise across all 64 bits. This is an
// entropy stretcher for game use, explicitly not a statistically
// rigorous or cryptographic generator.
package noise

import (
	"math/bits"

	"dotgames/periph"
)

// Generator holds the accumulator and the floating pin it samples.
// It implements math/rand's Source64, so it can feed rand.New directly.
type Generator struct {
	bits uint64
	pin  periph.AnalogPin
}

// NewGenerator seeds a generator with one full shuffle of the pin.
func NewGenerator(pin periph.AnalogPin) *Generator {
	g := &Generator{pin: pin}
	g.shuffle()
	return g
}

// shuffle folds one fresh sample per accumulator bit: rotate left one
// bit, XOR in the sample's low byte.
func (g *Generator) shuffle() {
	for i := 0; i < 64; i++ {
		sample := g.pin.Get()
		g.bits = bits.RotateLeft64(g.bits, 1) ^ uint64(sample&0xFF)
	}
}

// Uint64 re-mixes the accumulator and returns it.
func (g *Generator) Uint64() uint64 {
	g.shuffle()
	return g.bits
}

// Int63 returns a non-negative 63-bit value, per rand.Source.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Seed is a no-op; entropy comes from the pin, not a seed value.
func (g *Generator) Seed(int64) {}
