// Package periph defines the hardware surface the game core is written
// against. The real board binds these interfaces to GPIO and ADC pins;
// the simulator and the tests bind them to software fakes. Everything
// above this package is deterministic and hardware-free.
package periph

// OutputPin is a push-pull digital output line.
type OutputPin interface {
	High()
	Low()
}

// InputPin is a digital input line. Get reports the electrical level;
// active-low semantics (button pressed == low) belong to the caller.
type InputPin interface {
	Get() bool
}

// AnalogPin is a single ADC channel. Get blocks for one conversion and
// returns a 10-bit sample in [0, 1023].
type AnalogPin interface {
	Get() uint16
}
