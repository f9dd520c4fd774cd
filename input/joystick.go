package input

import "dotgames/periph"

const (
	// center is the resting raw value of a 10-bit axis.
	center = 512

	// Threshold is the minimum signed magnitude an axis must exceed
	// (strictly) to count as deliberate input. Jitter near center never
	// produces events; this is the debounce.
	Threshold = 50
)

// Joystick reads a two-axis analog stick with a push button. The
// button line is active low.
type Joystick struct {
	x      periph.AnalogPin
	y      periph.AnalogPin
	button periph.InputPin
}

// NewJoystick returns a classifier over the two axis channels and the
// button line.
func NewJoystick(x, y periph.AnalogPin, button periph.InputPin) *Joystick {
	return &Joystick{x: x, y: y, button: button}
}

// Read samples each axis and the button once. Raw axis values are
// recentered around the midpoint and scaled to a signed ±127 range. A
// signal is produced only when the button is down or an axis clears
// the threshold; otherwise ok is false.
func (j *Joystick) Read() (Signal, bool) {
	sig := JoystickSignal{
		Horiz:  int8((int16(j.x.Get()) - center) / 4),
		Vert:   int8((int16(j.y.Get()) - center) / 4),
		Button: !j.button.Get(),
	}
	if sig.Button || abs(sig.Horiz) > Threshold || abs(sig.Vert) > Threshold {
		return Signal{Type: SignalJoystick, Joystick: sig}, true
	}
	return Signal{}, false
}
