// Package sim is the software board: a MAX7219 LED matrix decoded at
// the clock-edge level and rendered with tcell, a keyboard joystick,
// a jittery analog pin, and a beep-backed sounder. The game core runs
// against it unchanged; only the periph bindings differ from real
// hardware.
package sim

import (
	"github.com/gdamore/tcell/v2"

	"dotgames/grid"
	"dotgames/periph"
)

// Matrix is a software MAX7219 plus its LED panel. It receives the
// driver's bit-banged waveform through the three pin adapters, latches
// 16-bit command words exactly as the chip does (DIN sampled on the
// rising clock edge while LOAD is low, word latched on the LOAD rising
// edge), and repaints the panel after every latch.
type Matrix struct {
	screen tcell.Screen

	load, clk, din bool
	shift          uint16

	columns   [grid.Width]uint8
	intensity uint8
	shutdown  bool
	test      bool
}

// NewMatrix returns a matrix rendering to the given tcell screen.
// The chip powers up shut down, like the real part.
func NewMatrix(screen tcell.Screen) *Matrix {
	return &Matrix{screen: screen, load: true, shutdown: true}
}

// Pin roles on the chip.
const (
	pinLoad = iota
	pinClk
	pinDin
)

type matrixPin struct {
	m    *Matrix
	role int
}

func (p matrixPin) High() { p.m.setPin(p.role, true) }
func (p matrixPin) Low()  { p.m.setPin(p.role, false) }

// LoadPin returns the chip-select line, active low.
func (m *Matrix) LoadPin() periph.OutputPin { return matrixPin{m, pinLoad} }

// ClkPin returns the serial clock line.
func (m *Matrix) ClkPin() periph.OutputPin { return matrixPin{m, pinClk} }

// DinPin returns the serial data line.
func (m *Matrix) DinPin() periph.OutputPin { return matrixPin{m, pinDin} }

func (m *Matrix) setPin(role int, level bool) {
	switch role {
	case pinDin:
		m.din = level
	case pinClk:
		if level && !m.clk && !m.load {
			m.shift <<= 1
			if m.din {
				m.shift |= 1
			}
		}
		m.clk = level
	case pinLoad:
		if level && !m.load {
			m.latch()
		}
		if !level && m.load {
			m.shift = 0
		}
		m.load = level
	}
}

// latch applies the accumulated word to the addressed register.
func (m *Matrix) latch() {
	register := uint8(m.shift>>8) & 0x0F
	data := uint8(m.shift)

	switch {
	case register >= 0x1 && register <= 0x8:
		m.columns[register-1] = data
	case register == 0xA:
		m.intensity = data & 0x0F
	case register == 0xC:
		m.shutdown = data&1 == 0
	case register == 0xF:
		m.test = data&1 == 1
	}
	// Decode and scan-limit writes change nothing the panel shows.

	m.Redraw()
}

// lit reports the visible state of one LED: test mode lights the whole
// panel, shutdown blanks it, otherwise the column bit decides.
func (m *Matrix) lit(d grid.Dot) bool {
	if m.test {
		return true
	}
	if m.shutdown {
		return false
	}
	return m.columns[d.X]&(1<<(grid.Height-1-d.Y)) != 0
}

// Panel geometry in terminal cells. Each LED is two columns wide so it
// looks square.
const (
	originX = 2
	originY = 1
	cellW   = 2
)

// Redraw repaints the whole panel. Called after every latch and on
// terminal resize.
func (m *Matrix) Redraw() {
	onColor := ledColor(m.intensity)
	offStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 20, 20))

	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			// Row 0 of the terminal is the top of the panel, Y=7.
			cx := originX + x*cellW
			cy := originY + (grid.Height - 1 - y)

			r := '·'
			style := offStyle
			if m.lit(grid.Dot{X: x, Y: y}) {
				r = '█'
				style = tcell.StyleDefault.Foreground(onColor)
			}
			m.screen.SetContent(cx, cy, r, nil, style)
			if r == '█' {
				m.screen.SetContent(cx+1, cy, r, nil, style)
			} else {
				m.screen.SetContent(cx+1, cy, ' ', nil, style)
			}
		}
	}
	m.screen.Show()
}

// ledColor maps the chip's 16 intensity steps onto a red brightness.
func ledColor(intensity uint8) tcell.Color {
	level := 96 + int32(intensity)*10
	return tcell.NewRGBColor(level, level/6, 0)
}
