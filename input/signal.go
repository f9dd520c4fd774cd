// Package input turns noisy analog readings into discrete game events:
// a joystick classifier, a bounded poll history, and a poller that
// time-boxes sampling for real-time control or blocks for the first
// event.
package input

import "dotgames/grid"

// SignalType discriminates Signal payloads. The joystick is the only
// input device today; new devices add a type and a payload field.
type SignalType int

const (
	SignalJoystick SignalType = iota
)

// Signal is one classified input event. Signals are ephemeral: produced
// per sample, consumed, never persisted beyond the poll history.
type Signal struct {
	Type     SignalType
	Joystick JoystickSignal
}

// JoystickSignal is a classified dual-axis reading plus button state.
// Axis magnitudes are signed and centered: negative Horiz is left,
// positive is right; negative Vert is down, positive is up.
type JoystickSignal struct {
	Horiz  int8
	Vert   int8
	Button bool
}

// Direction reduces the signal to a single direction, if any axis
// clears the threshold. The axis with the larger magnitude wins; on an
// exact tie the vertical axis wins. A dominant axis still under the
// threshold falls through to the other one.
func (s JoystickSignal) Direction() (grid.Direction, bool) {
	if abs(s.Horiz) > abs(s.Vert) {
		if s.Horiz < -Threshold {
			return grid.Left, true
		}
		if s.Horiz > Threshold {
			return grid.Right, true
		}
	}
	if s.Vert < -Threshold {
		return grid.Down, true
	}
	if s.Vert > Threshold {
		return grid.Up, true
	}
	return 0, false
}

// abs widens before negating: the -128 rail has no int8 counterpart,
// and a wrapped magnitude would drop full-left and full-down input.
func abs(v int8) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}
